package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

func Parse() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	switch cfg.Storage.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return Config{}, fmt.Errorf("parse cfg: unknown storage driver %q", cfg.Storage.Driver)
	}

	return cfg, nil
}
