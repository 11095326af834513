package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Setenv(envDataDir, "/tmp/zarqon-test")
	t.Setenv(envCurrency, "USD")
	t.Setenv(envAccessPassphrase, "letmein")
	t.Setenv(envSecretPassphrase, "sealer")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/tmp/zarqon-test", cfg.DataDir)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "letmein", cfg.AccessPassphrase)
	assert.Equal(t, "sealer", cfg.SecretPassphrase)
}

func TestParseEnv_EmptyValuesKeepDefaults(t *testing.T) {
	t.Setenv(envDataDir, "")
	t.Setenv(envCurrency, "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, DefaultDirName, cfg.DataDir)
	assert.Equal(t, "IQD", cfg.Currency)
}
