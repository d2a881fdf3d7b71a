package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"pijat_jogja/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRepository_FindIdentityByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("FROM auth_users").WithArgs("admin@pijat.id").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow("u-1", "admin@pijat.id", "$2a$10$hash", now))
	mock.ExpectQuery("FROM auth_users").WithArgs("nobody@pijat.id").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	repo := NewAuthRepository(mock)

	identity, err := repo.FindIdentityByEmail(context.Background(), "admin@pijat.id")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "u-1", identity.ID)

	identity, err = repo.FindIdentityByEmail(context.Background(), "nobody@pijat.id")
	assert.NoError(t, err)
	assert.Nil(t, identity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_Sessions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	s := &model.Session{ID: "s-1", UserID: "u-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	mock.ExpectExec("INSERT INTO sessions").WithArgs("s-1", "u-1", s.CreatedAt, s.ExpiresAt).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE sessions SET revoked_at").WithArgs("s-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE sessions SET revoked_at").WithArgs("s-1").WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewAuthRepository(mock)
	require.NoError(t, repo.CreateSession(context.Background(), s))
	assert.NoError(t, repo.RevokeSession(context.Background(), "s-1"))
	assert.ErrorIs(t, repo.RevokeSession(context.Background(), "s-1"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_HasRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM user_roles")).WithArgs("u-1", model.RoleAdmin).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM user_roles")).WithArgs("u-2", model.RoleAdmin).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	repo := NewAuthRepository(mock)

	ok, err := repo.HasRole(context.Background(), "u-1", model.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasRole(context.Background(), "u-2", model.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthRepository_ResolveSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	columns := []string{"id", "email", "username", "full_name", "role"}
	mock.ExpectQuery("FROM sessions s").WithArgs("s-1", model.RoleAdmin).
		WillReturnRows(pgxmock.NewRows(columns).AddRow("u-1", "admin@pijat.id", "admin", "Admin Satu", model.RoleAdmin))
	mock.ExpectQuery("FROM sessions s").WithArgs("s-revoked", model.RoleAdmin).
		WillReturnRows(pgxmock.NewRows(columns))

	repo := NewAuthRepository(mock)

	user, err := repo.ResolveSession(context.Background(), "s-1", model.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Admin Satu", user.FullName)

	user, err = repo.ResolveSession(context.Background(), "s-revoked", model.RoleAdmin)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
