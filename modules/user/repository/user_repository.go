package repository

import (
	"context"
	"database/sql"

	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/modules/user/entity"
)

// UserRepository handles room_users database operations
type UserRepository struct {
	DB database.IDatabase
}

// UserRepositoryInterface defines the repository contract
type UserRepositoryInterface interface {
	GetByLoginName(ctx context.Context, loginName string) (*entity.RoomUser, error)
	Create(ctx context.Context, user *entity.RoomUser) error
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetByLoginName(ctx context.Context, loginName string) (*entity.RoomUser, error) {
	query := `
		SELECT id, loginname, room, password
		FROM room_users
		WHERE loginname = $1
		LIMIT 1
	`

	var user entity.RoomUser
	err := r.DB.GetContext(ctx, &user, query, loginName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByLoginName", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.RoomUser) error {
	query := `
		INSERT INTO room_users (id, loginname, room, password)
		VALUES ($1, $2, $3, $4)
	`

	err := r.DB.ExecContext(ctx, query, user.ID, user.LoginName, user.Room, user.PasswordHash)
	if err != nil {
		logger.Error("UserRepository:Create", err)
		return err
	}

	return nil
}
