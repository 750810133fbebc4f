package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	highScoreObject   = "scores"
	highScoreProperty = "best"
	defaultHighScore  = 20000
)

// HighScore is the persisted record
type HighScore struct {
	Score int `yaml:"score"`
	Stage int `yaml:"stage"`
}

// highScoreStore persists the best score through gdata, a nil manager keeps it in memory only
type highScoreStore struct {
	data *gdata.Manager
	best HighScore
}

// openHighScores opens the app data store, falling back to memory when the platform has none
func openHighScores(appName string) *highScoreStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Score] data store unavailable: %v (scores not saved)", err)
		m = nil
	}
	return newHighScoreStore(m)
}

func newHighScoreStore(m *gdata.Manager) *highScoreStore {
	s := &highScoreStore{data: m, best: HighScore{Score: defaultHighScore}}
	if err := s.load(); err != nil {
		log.Printf("[Score] %v (using default)", err)
	}
	return s
}

func (s *highScoreStore) load() error {
	if s.data == nil || !s.data.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}
	raw, err := s.data.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}
	var hs HighScore
	if err := yaml.Unmarshal(raw, &hs); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if hs.Score < 0 {
		return fmt.Errorf("corrupt high score %d", hs.Score)
	}
	s.best = hs
	return nil
}

func (s *highScoreStore) Best() int { return s.best.Score }

// Submit records score if it beats the best and saves it, returns whether it did
func (s *highScoreStore) Submit(score, stage int) (bool, error) {
	if score <= s.best.Score {
		return false, nil
	}
	s.best = HighScore{Score: score, Stage: stage}
	if s.data == nil {
		return true, nil
	}
	raw, err := yaml.Marshal(&s.best)
	if err != nil {
		return true, fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := s.data.SaveObjectProp(highScoreObject, highScoreProperty, raw); err != nil {
		return true, fmt.Errorf("failed to save high score: %w", err)
	}
	return true, nil
}
