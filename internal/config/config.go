package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port             int              `json:"port"`
	Mongo            MongoConfig      `json:"mongo"`
	JWTSecret        string           `json:"jwt_secret"`
	JWTTTLHours      int              `json:"jwt_ttl_hours"`
	BcryptCost       int              `json:"bcrypt_cost"`
	Session          SessionConfig    `json:"session"`
	UserCache        UserCacheConfig  `json:"user_cache"`
	LoginRateSeconds int              `json:"login_rate_seconds"`
	CORSAllowlist    []string         `json:"cors_allowlist"`
	LogConfig        logger.LogConfig `json:"log_config"`
}

type MongoConfig struct {
	URI    string `json:"uri"`
	DBName string `json:"db_name"`
}

type SessionConfig struct {
	Type  string      `json:"type"` // file | redis
	File  string      `json:"file"`
	Redis RedisConfig `json:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	Key      string `json:"key"`
}

type UserCacheConfig struct {
	Size       int `json:"size"`
	TTLSeconds int `json:"ttl_seconds"`
}

// Load reads the JSON config file. Secrets may instead come from the
// environment (optionally via a .env file): JWT_SECRET, MONGO_URI and
// REDIS_PASSWORD override their file counterparts when set.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	_ = godotenv.Load()
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Session.Redis.Password = v
	}

	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("mongo.uri is required")
	}
	if cfg.Mongo.DBName == "" {
		cfg.Mongo.DBName = "watchmark"
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 72
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 5
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	switch cfg.Session.Type {
	case "", "file":
		cfg.Session.Type = "file"
		if cfg.Session.File == "" {
			cfg.Session.File = "userData.txt"
		}
	case "redis":
		if cfg.Session.Redis.Addr == "" {
			return nil, fmt.Errorf("session.redis.addr is required for redis session store")
		}
	default:
		return nil, fmt.Errorf("session.type must be file or redis")
	}
	return &cfg, nil
}
