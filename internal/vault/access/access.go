// Package access tracks the access level of the current session. The level
// lives only in memory: every new process starts back at Baseline.
package access

import (
	"crypto/subtle"
	"sync"
)

// Level orders the session access tiers.
type Level int

const (
	// Baseline is the level every session starts with.
	Baseline Level = iota
	// Verified is granted by presenting the access passphrase.
	Verified
	// Internal unlocks development surfaces on top of Verified.
	Internal
)

func (l Level) String() string {
	switch l {
	case Verified:
		return "verified"
	case Internal:
		return "internal"
	default:
		return "baseline"
	}
}

// DefaultPassphrase verifies a session when no custom one is configured.
const DefaultPassphrase = "ZARQON-V2"

// Session holds the mutable access state. Safe for concurrent use.
type Session struct {
	passphrase string

	mu     sync.Mutex
	level  Level
	subs   map[int]chan Level
	nextID int
}

// NewSession creates a Baseline session checked against passphrase; an
// empty passphrase selects the default.
func NewSession(passphrase string) *Session {
	if passphrase == "" {
		passphrase = DefaultPassphrase
	}
	return &Session{
		passphrase: passphrase,
		subs:       make(map[int]chan Level),
	}
}

// Level returns the current access level.
func (s *Session) Level() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Unlock raises the session to Verified when the passphrase matches. It
// reports whether the attempt succeeded; a failed attempt never lowers an
// already verified session.
func (s *Session) Unlock(passphrase string) bool {
	if subtle.ConstantTimeCompare([]byte(passphrase), []byte(s.passphrase)) != 1 {
		return false
	}
	s.raise(Verified)
	return true
}

// UnlockInternal raises a Verified session to Internal. Baseline sessions
// must verify first.
func (s *Session) UnlockInternal() bool {
	s.mu.Lock()
	if s.level < Verified {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()
	s.raise(Internal)
	return true
}

// Reset drops the session back to Baseline.
func (s *Session) Reset() {
	s.set(Baseline)
}

// Allows reports whether the session satisfies the required level.
func (s *Session) Allows(required Level) bool {
	return s.Level() >= required
}

func (s *Session) raise(to Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.level >= to {
		return
	}
	s.setLocked(to)
}

func (s *Session) set(to Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.level == to {
		return
	}
	s.setLocked(to)
}

func (s *Session) setLocked(to Level) {
	s.level = to
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- to
	}
}

// Subscribe returns a channel receiving every level change, starting with
// the current level, and a cancel function releasing the subscription.
func (s *Session) Subscribe() (<-chan Level, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Level, 1)
	ch <- s.level
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}
