package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DefaultDirName, c.DataDir)
	assert.Equal(t, "IQD", c.Currency)
	assert.Empty(t, c.AccessPassphrase)
	assert.Empty(t, c.SecretPassphrase)
}

func TestDerivedPaths(t *testing.T) {
	c := Config{DataDir: "/data/zarqon"}

	assert.Equal(t, filepath.Join("/data/zarqon", "vault.db"), c.DatabaseFile())
	assert.Equal(t, filepath.Join("/data/zarqon", "blobs"), c.BlobDir())
	assert.Equal(t, filepath.Join("/data/zarqon", "backups"), c.BackupDir())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "IQD", cfg.Currency)
}
