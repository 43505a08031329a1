package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the state file kept in the data directory.
const FileName = "state.json"

// StateVersion is the current version of the state file format.
const StateVersion = 1

// ErrVersion indicates a state file written by a newer format.
var ErrVersion = errors.New("storage: unsupported state file version")

type stateFile struct {
	Version int               `json:"version"`
	SavedAt time.Time         `json:"saved_at"`
	Values  map[string]string `json:"values"`
}

// Store is a string key-value store backed by a single JSON file.
// Every Set rewrites the whole file through a temp file and rename.
type Store struct {
	baseDir string
	values  map[string]string
	loaded  bool
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, FileName)
}

// Load reads the state file. A missing file is an empty store.
func (s *Store) Load() error {
	s.values = map[string]string{}
	s.loaded = true

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var st stateFile
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("storage: parse %s: %w", s.Path(), err)
	}
	if st.Version > StateVersion {
		return fmt.Errorf("%w: %d", ErrVersion, st.Version)
	}
	for k, v := range st.Values {
		s.values[k] = v
	}
	return nil
}

// Get returns the value stored under key. Read failures count as absent.
func (s *Store) Get(key string) (string, bool) {
	if !s.loaded {
		if err := s.Load(); err != nil {
			return "", false
		}
	}
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and persists the file.
func (s *Store) Set(key, value string) error {
	if !s.loaded {
		// An unreadable file is replaced rather than blocking writes.
		_ = s.Load()
	}
	s.values[key] = value
	return s.flush()
}

func (s *Store) flush() error {
	if err := s.Init(); err != nil {
		return err
	}

	st := stateFile{Version: StateVersion, SavedAt: time.Now(), Values: s.values}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.baseDir, FileName+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path())
}

// Memory is an in-process store, used when no data directory is wanted.
type Memory struct {
	values map[string]string
	// FailWrites makes every Set return an error.
	FailWrites bool
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	if m.FailWrites {
		return errors.New("storage: memory store is read-only")
	}
	m.values[key] = value
	return nil
}
