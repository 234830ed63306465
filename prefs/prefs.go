// Package prefs persists the per-profile capture limit.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// DefaultLimitChars applies until a limit has been stored.
const DefaultLimitChars = 5000

var ErrInvalidLimit = errors.New("limit must be a positive number")

type Store interface {
	LimitChars() (int, error)
	SetLimitChars(n int) error
}

type file struct {
	LimitChars int `toml:"limitChars"`
}

// FileStore keeps preferences in <Dir>/<Profile>/prefs.toml.
type FileStore struct {
	Dir     string
	Profile string

	mu sync.Mutex
}

func NewFileStore(dir, profile string) *FileStore {
	if profile == "" {
		profile = "default"
	}

	return &FileStore{Dir: dir, Profile: profile}
}

func (s *FileStore) Path() string {
	return filepath.Join(s.Dir, s.Profile, "prefs.toml")
}

// LimitChars returns the stored limit, or the default when nothing valid is stored.
func (s *FileStore) LimitChars() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f file
	if _, err := toml.DecodeFile(s.Path(), &f); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultLimitChars, nil
		}
		return DefaultLimitChars, fmt.Errorf("read prefs failed:%w", err)
	}

	if f.LimitChars <= 0 {
		return DefaultLimitChars, nil
	}

	return f.LimitChars, nil
}

func (s *FileStore) SetLimitChars(n int) error {
	if n <= 0 {
		return ErrInvalidLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir failed:%w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs failed:%w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(file{LimitChars: n}); err != nil {
		tmp.Close()
		return fmt.Errorf("encode prefs failed:%w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs failed:%w", err)
	}

	return os.Rename(tmp.Name(), path)
}

// Memory is a Store that lives only as long as the process.
type Memory struct {
	mu    sync.Mutex
	limit int
}

func (m *Memory) LimitChars() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.limit <= 0 {
		return DefaultLimitChars, nil
	}

	return m.limit, nil
}

func (m *Memory) SetLimitChars(n int) error {
	if n <= 0 {
		return ErrInvalidLimit
	}

	m.mu.Lock()
	m.limit = n
	m.mu.Unlock()

	return nil
}
