// Package token holds the session credential for the lifetime of the
// process. The token is deliberately not persisted anywhere: closing the
// client ends the session, the same way a browser-tab-scoped credential
// would. Exactly one token is active at a time.
package token

import "sync"

// Store is the credential store shared between the session manager and the
// API client. Only the session manager and the client's unauthorized
// handler mutate it; everything else reads it through the API client.
type Store interface {
	// Get returns the current token, or "" when no session is active.
	Get() string
	// Set replaces the active token.
	Set(token string)
	// Clear removes the active token.
	Clear()
}

// MemoryStore is the process-scoped Store implementation.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
