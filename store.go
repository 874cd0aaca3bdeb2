package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Persisted keys, all JSON-encoded values
const (
	keyUserData        = "userData"
	keyMusicPlaylist   = "musicPlaylist"
	keyCustomPrograms  = "customPrograms"
	keyTrainingHistory = "trainingHistory"
)

// Store is the local key-value store backing all persisted state.
// Values are opaque JSON blobs; writes are last-write-wins.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the SQLite-backed store at path
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetItem returns the raw value for key, with ok=false when the key is unset
func (s *Store) GetItem(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// SetItem stores the raw value for key, replacing any previous value
func (s *Store) SetItem(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// getJSON decodes the value at key into dst. Missing keys and malformed
// values both report ok=false: unreadable data degrades to "no data".
func (s *Store) getJSON(key string, dst any) (bool, error) {
	raw, ok, err := s.GetItem(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Warn("discarding unreadable stored value", "key", key, "err", err)
		return false, nil
	}
	return true, nil
}

func (s *Store) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.SetItem(key, string(data))
}

// LoadProfile returns the persisted user profile, or nil when none exists
// (first run, or unreadable data routing back to onboarding)
func (s *Store) LoadProfile() (*UserProfile, error) {
	var profile UserProfile
	ok, err := s.getJSON(keyUserData, &profile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

// SaveProfile persists the user profile
func (s *Store) SaveProfile(p *UserProfile) error {
	return s.putJSON(keyUserData, p)
}

// LoadPrograms returns the persisted custom programs in creation order
func (s *Store) LoadPrograms() ([]CustomProgram, error) {
	var programs []CustomProgram
	if _, err := s.getJSON(keyCustomPrograms, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// SavePrograms persists the custom program list
func (s *Store) SavePrograms(programs []CustomProgram) error {
	return s.putJSON(keyCustomPrograms, programs)
}
