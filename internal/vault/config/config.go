package config

import (
	"path/filepath"
)

// DefaultDirName is the data directory created under the user home when no
// explicit directory is configured.
const DefaultDirName = ".zarqon"

// Config holds runtime settings for the vault CLI.
type Config struct {
	// DataDir holds the database, the preferences document and
	// materialized blobs.
	DataDir string

	// Currency is the display currency code.
	Currency string

	// AccessPassphrase verifies the session; empty selects the built-in.
	AccessPassphrase string

	// SecretPassphrase seals account secrets; empty selects the built-in.
	SecretPassphrase string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = DefaultDirName
	c.Currency = "IQD"
}

// DatabaseFile returns the SQLite database path inside the data directory.
func (c *Config) DatabaseFile() string {
	return filepath.Join(c.DataDir, "vault.db")
}

// BlobDir returns the directory for materialized image blobs.
func (c *Config) BlobDir() string {
	return filepath.Join(c.DataDir, "blobs")
}

// BackupDir returns the directory backups are exported to.
func (c *Config) BackupDir() string {
	return filepath.Join(c.DataDir, "backups")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the .env file, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
