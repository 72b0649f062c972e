package middleware

import (
	"roomboard/core/constants"
	"roomboard/core/errors"
	userservice "roomboard/modules/user/service"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Middleware bundles the HTTP middleware used by the routers.
type Middleware struct {
	users userservice.UserServiceInterface
	realm string
}

func NewMiddleware(users userservice.UserServiceInterface, realm string) *Middleware {
	return &Middleware{
		users: users,
		realm: realm,
	}
}

// BasicAuth verifies HTTP Basic credentials against the credential store.
// Missing or invalid credentials produce a 401 with a WWW-Authenticate
// challenge for the configured realm; the handler is never reached. On
// success the verified room assignment is stored on the request context.
func (m *Middleware) BasicAuth() echo.MiddlewareFunc {
	return echomiddleware.BasicAuthWithConfig(echomiddleware.BasicAuthConfig{
		Realm: m.realm,
		Validator: func(username string, password string, c echo.Context) (bool, error) {
			assignment, appErr := m.users.Verify(c.Request().Context(), username, password)
			if appErr != nil {
				if appErr.Code == errors.ErrUnauthorized {
					return false, nil
				}
				// Credential store unreachable is a server fault, not a challenge
				return false, appErr
			}
			c.Set(constants.ContextRoomAssignment, assignment)
			return true, nil
		},
	})
}
