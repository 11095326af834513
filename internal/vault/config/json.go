package config

import (
	"encoding/json"
	"os"

	"github.com/pumpkin2800/zarqon/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config fields untouched.
type JsonConfig struct {
	DataDir          *string `json:"data_dir"`
	Currency         *string `json:"currency"`
	AccessPassphrase *string `json:"access_passphrase"`
	SecretPassphrase *string `json:"secret_passphrase"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.Currency != nil {
		cfg.Currency = *jc.Currency
	}
	if jc.AccessPassphrase != nil {
		cfg.AccessPassphrase = *jc.AccessPassphrase
	}
	if jc.SecretPassphrase != nil {
		cfg.SecretPassphrase = *jc.SecretPassphrase
	}
}
