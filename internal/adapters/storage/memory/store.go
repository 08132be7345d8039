// Package memory es el Entity Store en memoria, para tests y modo dev.
package memory

import (
	"context"
	"encoding/json"
	"sync"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
	seq  map[string]int64
}

func New() *Store {
	return &Store{
		data: make(map[string][]byte),
		seq:  make(map[string]int64),
	}
}

func (s *Store) Get(ctx context.Context, collection string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[collection]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (s *Store) Put(ctx context.Context, collection string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = raw
	return nil
}

func (s *Store) NextID(ctx context.Context, collection string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[collection]++
	return s.seq[collection], nil
}

func (s *Store) Close() error { return nil }
