package config

import (
	"fmt"

	"roomboard/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	App      AppConfig
}

type ServerConfig struct {
	Port       int
	BasicRealm string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Enabled     bool
	Addr        string
	Password    string
	DB          int
	ScheduleTTL int // seconds
}

type LogConfig struct {
	Level  string
	Format string
}

type AppConfig struct {
	// Timezone is the single fixed zone all clock ranges are rendered in.
	Timezone string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", constants.DefaultServerPort)
	v.SetDefault("BASIC_AUTH_REALM", constants.DefaultBasicRealm)
	v.SetDefault("DB_HOST", constants.DefaultDatabaseHost)
	v.SetDefault("DB_PORT", constants.DefaultDatabasePort)
	v.SetDefault("DB_USER", constants.DefaultDatabaseUser)
	v.SetDefault("DB_PASSWORD", constants.DefaultDatabaseUser)
	v.SetDefault("DB_NAME", constants.DefaultDatabaseName)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_ADDR", constants.DefaultRedisAddr)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SCHEDULE_CACHE_TTL", constants.DefaultScheduleTTL)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("APP_TIMEZONE", constants.DefaultTimezone)

	cfg := &Config{
		Server: ServerConfig{
			Port:       v.GetInt("SERVER_PORT"),
			BasicRealm: v.GetString("BASIC_AUTH_REALM"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Enabled:     v.GetBool("REDIS_ENABLED"),
			Addr:        v.GetString("REDIS_ADDR"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			ScheduleTTL: v.GetInt("SCHEDULE_CACHE_TTL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		App: AppConfig{
			Timezone: v.GetString("APP_TIMEZONE"),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT %d", cfg.Server.Port)
	}
	if cfg.Redis.ScheduleTTL < 0 {
		return nil, fmt.Errorf("invalid SCHEDULE_CACHE_TTL %d", cfg.Redis.ScheduleTTL)
	}

	return cfg, nil
}
