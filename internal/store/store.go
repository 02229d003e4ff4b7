package store

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys.
const (
	keyPreferences = "preferences"
	keyStatsPrefix = "stats:"
)

// UserPreferences stores the last profile/search settings the CLI was run
// with, so the next invocation can default to them.
type UserPreferences struct {
	ProfileName string    `json:"profile_name"`
	Depth       int       `json:"depth"`
	Simulations int       `json:"simulations"`
	LastPlayed  time.Time `json:"last_played"`
}

// DefaultPreferences returns the preferences a fresh install starts with.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		ProfileName: "Expert",
		Depth:       6,
		Simulations: 300,
		LastPlayed:  time.Now(),
	}
}

// GameStats accumulates win/loss/draw counts for one profile.
type GameStats struct {
	GamesPlayed    int `json:"games_played"`
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Draws          int `json:"draws"`
	LongestWinStrk int `json:"longest_win_streak"`
	CurrentWinStrk int `json:"current_win_streak"`
}

// NewGameStats returns empty statistics for a profile never recorded before.
func NewGameStats() *GameStats {
	return &GameStats{}
}

// GetWinRate returns the win rate as a percentage (0-100).
func (s *GameStats) GetWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// GameResult is what RecordGame needs to update a profile's statistics.
type GameResult struct {
	ProfileName string
	Won         bool
	Draw        bool
}

// Storage wraps a BadgerDB handle for preferences and profile-keyed stats.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the BadgerDB database under the
// platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences persists prefs, stamping LastPlayed with the current time.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads the stored preferences, or defaults if none exist.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})
	return prefs, err
}

// LoadStats loads the statistics recorded for profileName, or empty stats
// if none exist yet.
func (s *Storage) LoadStats(profileName string) (*GameStats, error) {
	stats := NewGameStats()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStatsPrefix + profileName))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	return stats, err
}

func (s *Storage) saveStats(profileName string, stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStatsPrefix+profileName), data)
	})
}

// RecordGame updates and persists the statistics for result.ProfileName.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats(result.ProfileName)
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentWinStrk = 0
	case result.Won:
		stats.Wins++
		stats.CurrentWinStrk++
		if stats.CurrentWinStrk > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentWinStrk
		}
	default:
		stats.Losses++
		stats.CurrentWinStrk = 0
	}

	return s.saveStats(result.ProfileName, stats)
}
