// Package prefs persists user preferences as a small JSON document next to
// the vault database. Reads are served from memory; every save rewrites the
// file atomically and notifies subscribers.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FileName is the preferences document name inside the data directory.
const FileName = "prefs.json"

// Preferences holds the user-tunable dashboard values.
type Preferences struct {
	UserName  string          `json:"userName"`
	Currency  string          `json:"currency"`
	NetWorth  decimal.Decimal `json:"netWorth"`
	Followers int             `json:"followers"`
	BooksRead int             `json:"booksRead"`
}

// Defaults returns the preferences of a fresh vault.
func Defaults() Preferences {
	return Preferences{
		UserName:  "Emperor",
		Currency:  "IQD",
		NetWorth:  decimal.NewFromInt(2450000),
		Followers: 12500,
		BooksRead: 42,
	}
}

// FormatNetWorth renders the net worth in the preferred currency, falling
// back to the bare number when the currency code is unknown.
func (p Preferences) FormatNetWorth() string {
	cur := money.GetCurrency(p.Currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", p.NetWorth.String(), p.Currency)
	}
	minor := p.NetWorth.Shift(int32(cur.Fraction)).IntPart()
	return money.New(minor, p.Currency).Display()
}

// Manager owns the preferences document. Safe for concurrent use.
type Manager struct {
	path string

	mu      sync.Mutex
	current Preferences
	subs    map[int]chan Preferences
	nextID  int
}

// Open loads the preferences from dir, falling back to defaults when the
// document does not exist yet. A corrupt document is an error, not a reset.
func Open(dir string) (*Manager, error) {
	m := &Manager{
		path: filepath.Join(dir, FileName),
		subs: make(map[int]chan Preferences),
	}

	data, err := os.ReadFile(m.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		m.current = Defaults()
		return m, nil
	case err != nil:
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	if err := json.Unmarshal(data, &m.current); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	return m, nil
}

// Get returns the current preferences.
func (m *Manager) Get() Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set persists p and notifies subscribers. The in-memory value only changes
// when the write succeeds.
func (m *Manager) Set(p Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.save(p); err != nil {
		return err
	}
	m.current = p
	for _, ch := range m.subs {
		// drop the stale value if the subscriber has not caught up
		select {
		case <-ch:
		default:
		}
		ch <- p
	}
	return nil
}

// save writes atomically: temp file in the same directory, then rename.
func (m *Manager) save(p Preferences) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}

// Subscribe returns a channel receiving every subsequent Set, starting with
// the current value, and a cancel function releasing the subscription.
func (m *Manager) Subscribe() (<-chan Preferences, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan Preferences, 1)
	ch <- m.current
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}
