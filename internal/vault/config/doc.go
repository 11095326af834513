// Package config loads runtime configuration for the vault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional .env file in the working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory holding the database and preferences
//	-u string   currency code used for display
//
// # JSON schema
//
//	{
//	  "data_dir": "/home/user/.zarqon",
//	  "currency": "IQD",
//	  "access_passphrase": "...",
//	  "secret_passphrase": "..."
//	}
//
// The passphrases have no flags on purpose: flags leak into process
// listings. Use the .env file, the JSON file or the environment.
package config
