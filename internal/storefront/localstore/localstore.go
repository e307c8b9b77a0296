// Package localstore is the storefront's durable local storage: a small
// keyed byte store backing the cart snapshot and the auth token, the way a
// browser client would use localStorage.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is keyed durable storage. Writes are synchronous: when Set returns,
// the value survives a process restart.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// File keeps one file per key under BaseDir. Writes go through a temp file
// and rename so a crash never leaves a half-written value behind.
type File struct {
	BaseDir string
}

func NewFile(baseDir string) *File {
	return &File{BaseDir: baseDir}
}

func (f *File) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (f *File) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.BaseDir, 0o755); err != nil {
		return err
	}

	tmp := filepath.Join(f.BaseDir, ".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (f *File) Delete(key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *File) path(key string) string {
	return filepath.Join(f.BaseDir, sanitizeKey(key)+".json")
}

func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// Memory is the test double.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailSet makes every Set fail, for error-path tests.
	FailSet bool
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet {
		return fmt.Errorf("localstore: set disabled")
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
