package config

import (
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDBEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "pijat")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "pijat_jogja")
}

func TestLoad_Defaults(t *testing.T) {
	setDBEnv(t)
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("PRICING_EXCLUSIVE_POPULAR", "")
	t.Setenv("STORE_LOAD_TIMEOUT", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "host=localhost port=5432 user=pijat password=secret dbname=pijat_jogja sslmode=disable", cfg.DB.DSN)
	assert.Equal(t, int64(24), cfg.JWTExpirationHours)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.PricingExclusivePopular)
	assert.Equal(t, 10*time.Second, cfg.StoreLoadTimeout)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	setDBEnv(t)
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("JWT_EXPIRATION_HOURS", "8")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://pijatjogja.com, https://admin.pijatjogja.com,")
	t.Setenv("PRICING_EXCLUSIVE_POPULAR", "false")
	t.Setenv("STORE_LOAD_TIMEOUT", "3s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, int64(8), cfg.JWTExpirationHours)
	assert.Equal(t, []string{"https://pijatjogja.com", "https://admin.pijatjogja.com"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.PricingExclusivePopular)
	assert.Equal(t, 3*time.Second, cfg.StoreLoadTimeout)
}

func TestLoad_MissingRequired(t *testing.T) {
	setDBEnv(t)
	t.Setenv("JWT_SECRET_KEY", "")
	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")

	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("DB_HOST", "")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_HOST")
}

func TestInitRedis_Disabled(t *testing.T) {
	rdb, err := InitRedis("", "")
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestAutoMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS settings").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	require.NoError(t, AutoMigrate(mock))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS settings").WillReturnError(errors.New("permission denied"))
	assert.ErrorContains(t, AutoMigrate(mock), "unable to apply migrations")
	assert.NoError(t, mock.ExpectationsWereMet())
}
