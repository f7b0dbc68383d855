// Package session holds the authenticated identity for the current process
// and the durable copy of the bearer token.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonathan/recruiter-console/internal/types"
)

// Store keeps the identity and token in memory. Only the token survives a
// process restart: New reads it back from tokenPath, the identity does not
// come back until a fresh login (or an explicit RehydrateIdentity).
type Store struct {
	mu        sync.RWMutex
	user      *types.UserIdentity
	token     string
	tokenPath string
}

// New creates a store backed by the token file at path. A missing file just
// means no persisted token; any other read failure is surfaced.
func New(path string) (*Store, error) {
	s := &Store{tokenPath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read token file %s: %w", path, err)
	}

	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Login stores the identity and token and persists the token copy.
func (s *Store) Login(user *types.UserIdentity, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.tokenPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.user = user
	s.token = token
	return nil
}

// Logout clears the in-memory identity and removes the persisted token.
// After Logout both user and token are guaranteed to be zero.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	// A missing file is already the state we want.
	_ = os.Remove(s.tokenPath)
}

// Identity returns the current identity, or nil when not logged in.
func (s *Store) Identity() *types.UserIdentity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the bearer token, or "" when none is held. Implements the
// api.TokenSource interface.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Role returns the current role, or "" when no identity is held.
func (s *Store) Role() types.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}
