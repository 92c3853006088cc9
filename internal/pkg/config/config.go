package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	ServerAddr         string        `env:"SERVER_ADDR" envDefault:":8080"`
	AdminAddr          string        `env:"ADMIN_ADDR" envDefault:":9091"`
	PostgresURL        string        `env:"POSTGRES_URL,required"`
	RedisURL           string        `env:"REDIS_URL,required"`
	JWTSecret          string        `env:"JWT_SECRET,required"`
	MembershipCacheTTL time.Duration `env:"MEMBERSHIP_CACHE_TTL" envDefault:"30s"`
	MaxOpenConns       int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns       int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
