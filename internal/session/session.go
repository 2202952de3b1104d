// Package session keeps the logged-in identity for CLI use, persisted as a
// small JSON file so a login survives between invocations.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Session is the locally cached identity. Token is the raw JWT used to
// authenticate follow-up calls.
type Session struct {
	ProfileID string `json:"profile_id"`
	UserID    string `json:"user_id"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

type Manager struct {
	mu          sync.Mutex
	path        string
	current     *Session
	subscribers []func(*Session)
}

// NewManager loads any persisted session from path. A missing or corrupt
// file just means no session.
func NewManager(path string) *Manager {
	m := &Manager{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return m
	}
	m.current = &s
	return m
}

// Current returns the active session, or nil when logged out.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	s := *m.current
	return &s
}

// Set stores and persists a new session, then notifies subscribers.
func (m *Manager) Set(s Session) error {
	m.mu.Lock()
	m.current = &s
	err := m.persist()
	subs := append([]func(*Session){}, m.subscribers...)
	m.mu.Unlock()

	snapshot := s
	for _, fn := range subs {
		fn(&snapshot)
	}
	return err
}

// Clear drops the session and removes the persisted file.
func (m *Manager) Clear() error {
	m.mu.Lock()
	m.current = nil
	err := os.Remove(m.path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		err = nil
	}
	subs := append([]func(*Session){}, m.subscribers...)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
	return err
}

// Subscribe registers a callback invoked on every session change. The
// callback receives nil on logout.
func (m *Manager) Subscribe(fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

func (m *Manager) persist() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(m.current, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, raw, 0o600)
}
