package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens an isolated gdata manager, nil when the platform has no data dir
func openTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("galangua_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager: %v", err)
	}
	return m
}

// TestHighScoreMemoryFallback verifies a nil store keeps scores in memory
func TestHighScoreMemoryFallback(t *testing.T) {
	s := newHighScoreStore(nil)
	assert.Equal(t, defaultHighScore, s.Best())

	best, err := s.Submit(defaultHighScore-1, 0)
	require.NoError(t, err)
	assert.False(t, best)

	best, err = s.Submit(defaultHighScore+10, 3)
	require.NoError(t, err)
	assert.True(t, best)
	assert.Equal(t, defaultHighScore+10, s.Best())
}

// TestHighScorePersists verifies a saved record is loaded by a new store
func TestHighScorePersists(t *testing.T) {
	m := openTestStore(t)

	s := newHighScoreStore(m)
	_, err := s.Submit(54321, 4)
	require.NoError(t, err)

	reloaded := newHighScoreStore(m)
	assert.Equal(t, 54321, reloaded.Best())
	assert.Equal(t, 4, reloaded.best.Stage)
}

// TestHighScoreCorruptRecord verifies a malformed record falls back to the default
func TestHighScoreCorruptRecord(t *testing.T) {
	m := openTestStore(t)

	tests := []struct {
		name string
		raw  string
	}{
		{"not yaml", "score: [unterminated"},
		{"negative", "score: -5\nstage: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, m.SaveObjectProp(highScoreObject, highScoreProperty, []byte(tt.raw)))
			s := newHighScoreStore(m)
			assert.Equal(t, defaultHighScore, s.Best())
		})
	}
}
