// Package memory implements an in-process session store. Used when Redis is
// disabled: the session then lives exactly as long as the process, which is
// the correct degradation for a client-side store.
package memory

import (
	"context"
	"sync"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// SessionStore implements session.Store on a mutex-guarded map.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{data: make(map[string]string)}
}

// Set stores a value under key.
func (s *SessionStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Get retrieves a value. Missing keys come back as shared.ErrNotFound.
func (s *SessionStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	if !ok {
		return "", shared.NewDomainError("session", "Get", shared.ErrNotFound, key)
	}
	return val, nil
}

// Delete removes the given keys. Missing keys are not an error.
func (s *SessionStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

// Len reports the number of stored entries.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
