// Package sessiontest provides an in-memory session.Store for tests.
package sessiontest

import "github.com/schoolhub/portal/internal/session"

var _ session.Store = (*MemoryStore)(nil)

// MemoryStore is a Store held in memory.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Token() string {
	return m.values[session.TokenKey]
}

func (m *MemoryStore) SetToken(token string) error {
	m.values[session.TokenKey] = token
	return nil
}

func (m *MemoryStore) ClearToken() error {
	delete(m.values, session.TokenKey)
	return nil
}

func (m *MemoryStore) RememberedUsername() string {
	return m.values[session.RememberedUsernameKey]
}

func (m *MemoryStore) SetRememberedUsername(username string) error {
	m.values[session.RememberedUsernameKey] = username
	return nil
}

func (m *MemoryStore) ClearRememberedUsername() error {
	delete(m.values, session.RememberedUsernameKey)
	return nil
}
