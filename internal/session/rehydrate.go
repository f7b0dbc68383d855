package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/recruiter-console/internal/types"
)

// ErrNoToken indicates RehydrateIdentity was called with no persisted token.
type ErrNoToken struct{}

func (e *ErrNoToken) Error() string {
	return "no token held; log in first"
}

// RehydrateIdentity rebuilds the in-memory identity from the claims of the
// stored token. The client never holds the signing secret, so the token is
// decoded without signature verification; the server still rejects a forged
// or expired token on the first protected call.
func (s *Store) RehydrateIdentity() (*types.UserIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return nil, &ErrNoToken{}
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode stored token: %w", err)
	}

	user := &types.UserIdentity{}

	if email, ok := claims["email"].(string); ok {
		user.Email = email
	} else if sub, ok := claims["sub"].(string); ok {
		user.Email = sub
	}

	if role, ok := claims["role"].(string); ok {
		user.Role = types.Role(role)
	}
	if !user.Role.Valid() || user.Email == "" {
		return nil, fmt.Errorf("stored token carries no usable identity claims")
	}

	// JSON numbers decode as float64.
	if companyID, ok := claims["companyId"].(float64); ok {
		user.CompanyID = int64(companyID)
	}

	s.user = user
	return user, nil
}
