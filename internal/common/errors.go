// Package common defines shared constants and sentinel errors used across
// the vault and portfolio applications. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound        = errors.New("not found")
	ErrStorageFull     = errors.New("storage full")
	ErrSchemaViolation = errors.New("schema violation")

	// Backup document errors.
	ErrInvalidFormat = errors.New("invalid backup format")

	// Obfuscation errors. Unseal returns ErrDecryptFailed for malformed
	// ciphertext or a wrong key; it cannot tell the two apart.
	ErrDecryptFailed = errors.New("decrypt failed")

	// Service-level errors.
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")
)
