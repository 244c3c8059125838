package properties

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidKey indicates a property key is empty or contains whitespace or '='.
	ErrInvalidKey = errors.New("property keys must be non-empty and contain no whitespace or '='")
)

// MemoryStore is a process-wide property table, the counterpart of a JVM's
// system properties, kept in-memory and guarded by a RWMutex. It satisfies
// pbconfig.Source.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// FromMap builds a store from values after validating every key.
func FromMap(values map[string]string) (*MemoryStore, error) {
	s := NewMemoryStore()
	for k, v := range values {
		if err := s.Set(k, v); err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
	}
	return s, nil
}

// LoadFile reads a flat YAML mapping of property names to string values.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return FromMap(raw)
}

// Lookup returns the value stored under key.
func (s *MemoryStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Set validates key and stores value verbatim.
func (s *MemoryStore) Set(key, value string) error {
	if !validKey(key) {
		return ErrInvalidKey
	}

	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	return nil
}

// Keys returns the stored keys in sorted order.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	return !strings.ContainsAny(key, "= \t\r\n")
}
