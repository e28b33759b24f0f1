package repository

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/storefront-cart/internal/port"
)

// MemoryStore keeps entries in process memory. State is lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var (
	_ port.KVStore = (*MemoryStore)(nil)
	_ port.Updater = (*MemoryStore)(nil)
)

func NewMemory() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, port.ErrNotFound
	}

	return bytes.Clone(value), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = bytes.Clone(value)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(bytes.Clone(s.entries[key]))
	if err != nil {
		return err
	}

	s.entries[key] = bytes.Clone(next)
	return nil
}
