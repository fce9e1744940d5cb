package content

import "sync"

// AnonTokenKey is the fixed key the anonymous cart token lives under, both in
// the browser cookie and in any other TokenStore backing.
const AnonTokenKey = "edulike_cart_token"

// TokenStore is the client-local persistence for the anonymous cart token.
// The HTTP layer backs it with a cookie; tests use MemoryTokenStore.
type TokenStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryTokenStore is a map-backed TokenStore.
type MemoryTokenStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{m: make(map[string]string)}
}

func (s *MemoryTokenStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryTokenStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}
