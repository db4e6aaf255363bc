package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
	"github.com/ewelinajablonska/tictactoe-backend/testing/suite"
)

func TestUserRepository(t *testing.T) {
	ctx, st := suite.New(t)

	userRepo := NewUserRepository(st.DB.Connection)

	// Given: two saved users
	alice := &entity.User{ID: "user-1", Email: "alice@example.com", Name: "Alice", PasswordHash: "hash-a"}
	bob := &entity.User{ID: "user-2", Email: "bob@example.com", Name: "Bob", PasswordHash: "hash-b"}
	require.NoError(t, userRepo.Save(ctx, alice))
	require.NoError(t, userRepo.Save(ctx, bob))

	t.Run("FindByEmail", func(t *testing.T) {
		user, err := userRepo.FindByEmail(ctx, "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, alice, user)
	})

	t.Run("FindByEmail_NotFound", func(t *testing.T) {
		_, err := userRepo.FindByEmail(ctx, "ghost@example.com")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("FindByID", func(t *testing.T) {
		user, err := userRepo.FindByID(ctx, "user-2")

		require.NoError(t, err)
		assert.Equal(t, bob, user)
	})

	t.Run("ExistAll", func(t *testing.T) {
		known, err := userRepo.ExistAll(ctx, []string{"user-1", "user-2"})
		require.NoError(t, err)
		assert.True(t, known)

		known, err = userRepo.ExistAll(ctx, []string{"user-1", "ghost"})
		require.NoError(t, err)
		assert.False(t, known)
	})

	t.Run("Save_DuplicateEmail", func(t *testing.T) {
		err := userRepo.Save(ctx, &entity.User{ID: "user-3", Email: "alice@example.com"})

		require.Error(t, err)
	})
}
