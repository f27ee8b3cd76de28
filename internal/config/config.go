package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration of the service.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Redis   RedisConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// RedisConfig points at the draft-state cache. An empty address runs
// the service without a cache; sessions then live only in memory.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// SessionConfig tunes the editing-session lifecycle. Zero values fall
// back to the built-in defaults of each consumer.
type SessionConfig struct {
	HistoryLimit  int
	IdleTimeout   time.Duration
	SweepInterval time.Duration
	SnapshotTTL   time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Tests run from package directories, so look upward for the file
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Session: SessionConfig{
			HistoryLimit:  viper.GetInt("session.history_limit"),
			IdleTimeout:   viper.GetDuration("session.idle_timeout") * time.Second,
			SweepInterval: viper.GetDuration("session.sweep_interval") * time.Second,
			SnapshotTTL:   viper.GetDuration("session.snapshot_ttl") * time.Second,
		},
	}

	// Override with environment variables if set
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDRESS"); v != "" {
		config.Redis.Address = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		config.Redis.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Logger.Level = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		config.Logger.Env = v
	}
	if v := os.Getenv("SESSION_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Session.HistoryLimit = n
		}
	}

	return config, nil
}
