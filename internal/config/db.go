package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Info().Msg("Successfully connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max_attempts", maxRetries).
			Dur("retry_in", retryInterval).Msg("Failed to connect to database")
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// Schema is applied idempotently at startup. Default settings rows are seeded
// once; later edits are never overwritten.
const Schema = `
	CREATE TABLE IF NOT EXISTS settings (
		id SERIAL PRIMARY KEY,
		setting_key TEXT UNIQUE NOT NULL,
		setting_value TEXT,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	INSERT INTO settings (setting_key, setting_value) VALUES
		('site_name', 'Pijat Panggilan Jogja'),
		('wa_number', '6281234567890'),
		('auto_message', 'Halo, saya ingin memesan layanan pijat')
	ON CONFLICT (setting_key) DO NOTHING;

	CREATE TABLE IF NOT EXISTS footer_settings (
		id INT PRIMARY KEY CHECK (id = 1),
		site_name TEXT NOT NULL DEFAULT '',
		site_description TEXT NOT NULL DEFAULT '',
		wa_number TEXT NOT NULL DEFAULT '',
		wa_message TEXT NOT NULL DEFAULT '',
		phone_display TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		alamat TEXT NOT NULL DEFAULT '',
		instagram_url TEXT NOT NULL DEFAULT '',
		copyright_text TEXT NOT NULL DEFAULT '',
		copyright_subtext TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS pricing_packages (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		price TEXT NOT NULL, -- display string, e.g. 'Rp 150.000'
		duration TEXT NOT NULL,
		features TEXT[] NOT NULL DEFAULT '{}',
		popular BOOLEAN NOT NULL DEFAULT false,
		sort_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_pricing_packages_sort_order ON pricing_packages(sort_order);

	CREATE TABLE IF NOT EXISTS auth_users (
		id UUID PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID UNIQUE NOT NULL REFERENCES auth_users(id) ON DELETE CASCADE,
		username TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('admin', 'super_admin')) DEFAULT 'admin',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS user_roles (
		user_id UUID NOT NULL REFERENCES auth_users(id) ON DELETE CASCADE,
		role TEXT NOT NULL,
		UNIQUE (user_id, role)
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES auth_users(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		revoked_at TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);
`

// Execer is the part of *pgxpool.Pool used by AutoMigrate
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db Execer) error {
	if _, err := db.Exec(context.Background(), Schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Info().Msg("AutoMigrate applied successfully")
	return nil
}
