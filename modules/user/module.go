package user

import (
	"roomboard/core/database"
	"roomboard/modules/user/repository"
	"roomboard/modules/user/service"
)

// Init builds the user module. It registers no routes of its own; the
// service is consumed by the auth middleware and the adduser command.
func Init(db database.IDatabase) service.UserServiceInterface {
	repo := repository.NewUserRepository(db)
	return service.NewUserService(repo)
}
