package service

import (
	"context"
	"errors"
	"testing"

	apperrors "roomboard/core/errors"
	"roomboard/core/utils"
	"roomboard/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users   map[string]*entity.RoomUser
	err     error
	created *entity.RoomUser
}

func (f *fakeUserRepository) GetByLoginName(ctx context.Context, loginName string) (*entity.RoomUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[loginName], nil
}

func (f *fakeUserRepository) Create(ctx context.Context, user *entity.RoomUser) error {
	if f.err != nil {
		return f.err
	}
	f.created = user
	return nil
}

func repoWithUser(t *testing.T, loginName, password, room string) *fakeUserRepository {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &fakeUserRepository{
		users: map[string]*entity.RoomUser{
			loginName: {
				ID:           uuid.New(),
				LoginName:    loginName,
				Room:         room,
				PasswordHash: hash,
			},
		},
	}
}

func TestUserService_Verify(t *testing.T) {
	t.Run("valid credentials return the room assignment", func(t *testing.T) {
		repo := repoWithUser(t, "display1", "secret", "A-101")
		svc := NewUserService(repo)

		assignment, appErr := svc.Verify(context.Background(), "display1", "secret")

		require.Nil(t, appErr)
		assert.Equal(t, "display1", assignment.LoginName)
		assert.Equal(t, "A-101", assignment.Room)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		repo := repoWithUser(t, "display1", "secret", "A-101")
		svc := NewUserService(repo)

		assignment, appErr := svc.Verify(context.Background(), "display1", "nope")

		assert.Nil(t, assignment)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	})

	t.Run("unknown login is unauthorized", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepository{users: map[string]*entity.RoomUser{}})

		assignment, appErr := svc.Verify(context.Background(), "ghost", "secret")

		assert.Nil(t, assignment)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	})

	t.Run("empty credentials are unauthorized without a lookup", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepository{err: errors.New("should not be called")})

		_, appErr := svc.Verify(context.Background(), "", "")

		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	})

	t.Run("store failure is a server error, not a challenge", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepository{err: errors.New("connection refused")})

		_, appErr := svc.Verify(context.Background(), "display1", "secret")

		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrInternalServer, appErr.Code)
	})
}

func TestUserService_Create(t *testing.T) {
	t.Run("stores a salted hash, never the password", func(t *testing.T) {
		repo := &fakeUserRepository{users: map[string]*entity.RoomUser{}}
		svc := NewUserService(repo)

		created, appErr := svc.Create(context.Background(), "display1", "secret", "A-101")

		require.Nil(t, appErr)
		require.NotNil(t, repo.created)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.NotEqual(t, "secret", repo.created.PasswordHash)
		assert.True(t, utils.CheckPassword(repo.created.PasswordHash, "secret"))
	})

	t.Run("rejects duplicate loginname", func(t *testing.T) {
		repo := repoWithUser(t, "display1", "secret", "A-101")
		svc := NewUserService(repo)

		_, appErr := svc.Create(context.Background(), "display1", "other", "B-202")

		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrAlreadyExists, appErr.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepository{users: map[string]*entity.RoomUser{}})

		_, appErr := svc.Create(context.Background(), "display1", "", "A-101")

		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
	})
}
