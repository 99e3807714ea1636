package config

import (
	"fmt"
	"net"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

func Parse() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.App.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.App.Storage)
	}

	if len(c.Auth.Secret) < 16 {
		return fmt.Errorf("auth secret must be at least 16 bytes")
	}

	if (c.Auth.BootstrapUsername == "") != (c.Auth.BootstrapPassword == "") {
		return fmt.Errorf("auth bootstrap username and password must be set together")
	}

	return nil
}

// DatabaseAddr joins host and port of the database.
func (c DatabaseConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
