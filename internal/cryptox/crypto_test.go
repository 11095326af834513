package cryptox

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	// same inputs -> same output
	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	assert.Equal(t, 32, len(key1))
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestSealUnseal_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{"simple", "hunter2"},
		{"unicode", "пароль-密码"},
		{"long", string(bytes.Repeat([]byte("a"), 4096))},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sealed, err := Seal(tc.plaintext, DefaultKey)
			require.NoError(t, err)

			got, err := Unseal(sealed, DefaultKey)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, got)
		})
	}
}

func TestSeal_NotDeterministic(t *testing.T) {
	c1, err := Seal("same secret", DefaultKey)
	require.NoError(t, err)
	c2, err := Seal("same secret", DefaultKey)
	require.NoError(t, err)

	// fresh salt and nonce per call
	assert.NotEqual(t, c1, c2)
}

func TestUnseal_WrongKey(t *testing.T) {
	sealed, err := Seal("secret", "key-one")
	require.NoError(t, err)

	_, err = Unseal(sealed, "key-two")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecryptFailed))
}

func TestUnseal_Garbage(t *testing.T) {
	tests := []string{
		"",
		"not base64 !!!",
		"AAAA",           // valid base64, too short
		"AAAAAAAAAAAAAA", // still too short
	}
	for _, garbage := range tests {
		_, err := Unseal(garbage, DefaultKey)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrDecryptFailed))
	}
}

func TestUnsealLenient_SoftFailure(t *testing.T) {
	assert.Equal(t, "", UnsealLenient("garbage", DefaultKey))

	sealed, err := Seal("visible", DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "visible", UnsealLenient(sealed, DefaultKey))
}
