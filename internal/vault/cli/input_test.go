package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out, "Secret")
	require.Error(t, err)
}

func TestGetDecimal(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("12500.75\n"))
	var out bytes.Buffer
	got, err := GetDecimal(in, "Amount", &out)
	require.NoError(t, err)
	assert.Equal(t, "12500.75", got.String())

	in = bufio.NewReader(strings.NewReader("abc\n"))
	_, err = GetDecimal(in, "Amount", &out)
	require.Error(t, err)
}

func TestGetInt_EmptyUsesDefault(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("\n"))
	var out bytes.Buffer
	got, err := GetInt(in, "Followers", 42, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestGetDate(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("2026-08-29\n"))
	var out bytes.Buffer
	got, err := GetDate(in, "Date", &out)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), got)

	in = bufio.NewReader(strings.NewReader("29/08/2026\n"))
	_, err = GetDate(in, "Date", &out)
	require.Error(t, err)
}

func TestGetDate_EmptyIsToday(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("\n"))
	var out bytes.Buffer
	got, err := GetDate(in, "Date", &out)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got, 25*time.Hour)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tt := range tests {
		in := bufio.NewReader(strings.NewReader(tt.input))
		var out bytes.Buffer
		got, err := Confirm(in, "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("0")
	require.Error(t, err)
	_, err = parseID("abc")
	require.Error(t, err)
}
