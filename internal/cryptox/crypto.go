// Package cryptox implements the reversible secret obfuscation used by the
// accounts vault: AES-256-GCM over an argon2id-derived key.
//
// Sealing is not deterministic: every call draws a fresh salt and nonce, so
// sealing the same plaintext twice yields different ciphertexts. The output
// is base64(salt || nonce || ciphertext) and is safe to store as text.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"github.com/pumpkin2800/zarqon/internal/common"
	"golang.org/x/crypto/argon2"
)

// DefaultKey is the static passphrase used when no key is configured.
// A static embedded key provides no real confidentiality; it exists so a
// fresh install works out of the box and should be overridden in config.
const DefaultKey = "empire-secret-key"

const (
	saltSize  = 16
	nonceSize = 12
)

// DeriveKey stretches a passphrase into a 32-byte AES key using argon2id.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with the given passphrase and returns a base64
// string containing salt, nonce and ciphertext.
func Seal(plaintext string, key string) (string, error) {
	salt := common.GenerateRandByteArray(saltSize)
	nonce := common.GenerateRandByteArray(nonceSize)

	block, err := aes.NewCipher(DeriveKey([]byte(key), salt))
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("new gcm: %w", err)
	}

	out := make([]byte, 0, saltSize+nonceSize+len(plaintext)+aesgcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	out = aesgcm.Seal(out, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Unseal reverses Seal. It returns common.ErrDecryptFailed for malformed
// ciphertext or a wrong key; it cannot distinguish the two. It never panics.
func Unseal(ciphertext string, key string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptFailed, err)
	}
	if len(raw) < saltSize+nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", common.ErrDecryptFailed)
	}

	salt := raw[:saltSize]
	nonce := raw[saltSize : saltSize+nonceSize]
	data := raw[saltSize+nonceSize:]

	block, err := aes.NewCipher(DeriveKey([]byte(key), salt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptFailed, err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptFailed, err)
	}

	plaintext, err := aesgcm.Open(nil, nonce, data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecryptFailed, err)
	}
	return string(plaintext), nil
}

// UnsealLenient behaves like the original application's decrypt helper:
// any failure yields an empty string. Display paths must treat "" as
// "cannot display", not as an empty secret.
func UnsealLenient(ciphertext string, key string) string {
	s, err := Unseal(ciphertext, key)
	if err != nil {
		return ""
	}
	return s
}
