package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	m := NewManager(path)
	assert.Nil(t, m.Current())

	require.NoError(t, m.Set(Session{
		ProfileID: "p1",
		Phone:     "13800000001",
		Username:  "admin",
		Role:      "admin",
		Token:     "tok",
	}))

	reloaded := NewManager(path)
	got := reloaded.Current()
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, "tok", got.Token)
}

func TestManager_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	m := NewManager(path)
	require.NoError(t, m.Set(Session{ProfileID: "p1"}))
	require.NoError(t, m.Clear())
	assert.Nil(t, m.Current())

	reloaded := NewManager(path)
	assert.Nil(t, reloaded.Current())

	// Clearing an already-clear session is fine
	require.NoError(t, m.Clear())
}

func TestManager_NotifiesSubscribers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	m := NewManager(path)

	var seen []string
	m.Subscribe(func(s *Session) {
		if s == nil {
			seen = append(seen, "<logout>")
			return
		}
		seen = append(seen, s.Username)
	})

	require.NoError(t, m.Set(Session{Username: "alice"}))
	require.NoError(t, m.Set(Session{Username: "bob"}))
	require.NoError(t, m.Clear())

	assert.Equal(t, []string{"alice", "bob", "<logout>"}, seen)
}
