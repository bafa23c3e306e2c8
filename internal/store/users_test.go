package store

import (
	"context"
	"errors"
	"testing"

	"blog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var args []any
		db := rowDB(&fakeRow{vals: []any{1}}, &args)
		u, err := CreateUser(ctx, db, &model.User{Email: "Alice@Example.com ", Name: "Alice", PasswordHash: "h"})
		require.NoError(t, err)
		require.Equal(t, 1, u.ID)
		require.Equal(t, "alice@example.com", u.Email)
		require.Equal(t, []any{"alice@example.com", "h", "Alice"}, args)
	})

	t.Run("duplicate email", func(t *testing.T) {
		in := &model.User{Email: " A@x.com"}
		db := rowDB(&fakeRow{scanErr: errUnique}, nil)
		u, err := CreateUser(ctx, db, in)
		require.ErrorIs(t, err, ErrConflict)
		require.Nil(t, u)
		require.Equal(t, " A@x.com", in.Email)
		require.Zero(t, in.ID)
	})

	t.Run("other error", func(t *testing.T) {
		db := rowDB(&fakeRow{scanErr: errors.New("conn reset")}, nil)
		_, err := CreateUser(ctx, db, &model.User{Email: "a@x.com"})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrConflict)
		require.Contains(t, err.Error(), "CreateUser")
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	vals := []any{3, "bob@x.com", "hash", "Bob"}

	t.Run("by email", func(t *testing.T) {
		var args []any
		u, err := GetUserByEmail(ctx, rowDB(&fakeRow{vals: vals}, &args), " BOB@x.com")
		require.NoError(t, err)
		require.Equal(t, &model.User{ID: 3, Email: "bob@x.com", PasswordHash: "hash", Name: "Bob"}, u)
		require.Equal(t, []any{"bob@x.com"}, args)
	})

	t.Run("by email not found", func(t *testing.T) {
		_, err := GetUserByEmail(ctx, rowDB(&fakeRow{scanErr: pgx.ErrNoRows}, nil), "x@x.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("by id", func(t *testing.T) {
		var args []any
		u, err := GetUserByID(ctx, rowDB(&fakeRow{vals: vals}, &args), 3)
		require.NoError(t, err)
		require.Equal(t, "Bob", u.Name)
		require.Equal(t, []any{3}, args)
	})

	t.Run("by id not found", func(t *testing.T) {
		u, err := GetUserByID(ctx, rowDB(&fakeRow{scanErr: pgx.ErrNoRows}, nil), 9)
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, u)
	})
}
