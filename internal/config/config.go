package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pijat_jogja/internal/utils"

	"github.com/rs/zerolog/log"
)

// Config is the process configuration assembled from the environment
type Config struct {
	DB *DBConfig

	RedisAddr     string
	RedisPassword string

	JWTSecret          string
	JWTExpirationHours int64

	ServerPort         string
	CORSAllowedOrigins []string

	PricingExclusivePopular bool
	StoreLoadTimeout        time.Duration

	LogLevel  string
	LogFormat string

	// Optional first admin, created at startup when both are set
	InitialAdminEmail    string
	InitialAdminPassword string
}

// Load reads the configuration. Call godotenv.Load first to honour a .env file.
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours, err := strconv.ParseInt(os.Getenv("JWT_EXPIRATION_HOURS"), 10, 64)
	if err != nil || jwtExpHours <= 0 {
		log.Warn().Msg("Invalid JWT_EXPIRATION_HOURS, defaulting to 24")
		jwtExpHours = 24
	}

	return &Config{
		DB:                      dbCfg,
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		RedisPassword:           os.Getenv("REDIS_PASSWORD"),
		JWTSecret:               jwtSecret,
		JWTExpirationHours:      jwtExpHours,
		ServerPort:              utils.Getenv("SERVER_PORT", "8080"),
		CORSAllowedOrigins:      splitOrigins(utils.Getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		PricingExclusivePopular: utils.GetenvBool("PRICING_EXCLUSIVE_POPULAR", true),
		StoreLoadTimeout:        utils.GetenvDuration("STORE_LOAD_TIMEOUT", 10*time.Second),
		LogLevel:                utils.Getenv("LOG_LEVEL", "info"),
		LogFormat:               utils.Getenv("LOG_FORMAT", "console"),
		InitialAdminEmail:       os.Getenv("INITIAL_ADMIN_EMAIL"),
		InitialAdminPassword:    os.Getenv("INITIAL_ADMIN_PASSWORD"),
	}, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
