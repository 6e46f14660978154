// Package history persists recent queries to a small JSON file. It is
// strictly shell-side convenience: the approximation core never reads it and
// stays a pure function of its inputs.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RxinnotRstar/ratio-finder/internal/approx"
	"github.com/RxinnotRstar/ratio-finder/internal/validate"
)

// MaxEntries caps the stored history; Save trims oldest-first past this.
const MaxEntries = 100

// Entry is one recorded query with its best answer.
type Entry struct {
	ID   string    `json:"id" validate:"omitempty,uuid4"`
	A    int       `json:"a"`
	B    int       `json:"b"`
	Mode string    `json:"mode"`
	Num  int       `json:"num"`
	Den  int       `json:"den"`
	Err  float64   `json:"err"`
	At   time.Time `json:"at"`
}

// Data represents the structure of the history file.
type Data struct {
	Entries []Entry `json:"entries"`
}

// Store handles the loading and saving of the history file.
type Store struct {
	Path string `validate:"required,filepath"`
	Data Data
}

// NewStore opens the history file at path, creating an empty store when the
// file does not exist yet. Entries that fail validation are dropped rather
// than failing the load, so a damaged file self-heals on the next Save.
func NewStore(path string) (*Store, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &Store{Path: expandedPath}
	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Load() error {
	logrus.Debug("Loading history file from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &s.Data); err != nil {
		return fmt.Errorf("parsing history %s: %w", s.Path, err)
	}

	// Drop entries with bad ids or non-positive inputs.
	kept := s.Data.Entries[:0]
	for _, e := range s.Data.Entries {
		if e.A < 1 || e.B < 1 {
			continue
		}
		if e.ID != "" && validate.Var(e.ID, "uuid4") != nil {
			logrus.Warn("Invalid history entry id found; dropping entry.")
			continue
		}
		kept = append(kept, e)
	}
	s.Data.Entries = kept
	return nil
}

// Save writes the history data to the file, trimming to MaxEntries first.
func (s *Store) Save() error {
	logrus.Debug("Saving history file to: ", s.Path)
	if len(s.Data.Entries) > MaxEntries {
		s.Data.Entries = s.Data.Entries[len(s.Data.Entries)-MaxEntries:]
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// Record appends one query outcome. The recorded candidate is the exact
// shortcut when present, else the highlighted pick, else the ranked best.
func (s *Store) Record(a, b int, mode string, best approx.Candidate) {
	s.Data.Entries = append(s.Data.Entries, Entry{
		ID:   uuid.NewString(),
		A:    a,
		B:    b,
		Mode: mode,
		Num:  best.Num,
		Den:  best.Den,
		Err:  best.Err,
		At:   time.Now().UTC(),
	})
}

// Clear removes all entries and persists the empty store.
func (s *Store) Clear() error {
	s.Data.Entries = nil
	return s.Save()
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
