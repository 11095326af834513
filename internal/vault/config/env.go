package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized by parseEnv.
const (
	envDataDir          = "ZARQON_DATA_DIR"
	envCurrency         = "ZARQON_CURRENCY"
	envAccessPassphrase = "ZARQON_ACCESS_PASSPHRASE"
	envSecretPassphrase = "ZARQON_SECRET_PASSPHRASE"
)

// parseEnv overlays Config with values from the environment, after loading
// a .env file from the working directory when one exists. Variables already
// set in the environment win over the .env file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(envCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(envAccessPassphrase); v != "" {
		cfg.AccessPassphrase = v
	}
	if v := os.Getenv(envSecretPassphrase); v != "" {
		cfg.SecretPassphrase = v
	}
}
