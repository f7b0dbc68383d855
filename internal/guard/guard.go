// Package guard gates role-restricted views on the current session contents.
package guard

import (
	"fmt"
	"strings"

	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/types"
)

// ErrNotAuthenticated indicates no identity is held; callers redirect to the
// login route.
type ErrNotAuthenticated struct{}

func (e *ErrNotAuthenticated) Error() string {
	return "not authenticated"
}

// ErrForbidden indicates the current role is not in the allowed set.
type ErrForbidden struct {
	Role    types.Role
	Allowed []types.Role
}

func (e *ErrForbidden) Error() string {
	names := make([]string, len(e.Allowed))
	for i, r := range e.Allowed {
		names[i] = string(r)
	}
	return fmt.Sprintf("role %s not allowed; requires one of: %s", e.Role, strings.Join(names, ", "))
}

// Guard allows a view to render only for a fixed set of roles.
type Guard struct {
	allowed []types.Role
}

// Require builds a guard for the given roles. One role or several are
// handled uniformly; callers never need to distinguish.
func Require(roles ...types.Role) *Guard {
	return &Guard{allowed: roles}
}

// Check returns nil when the session holds an identity whose role is in the
// allowed set. Any non-nil error means the caller must redirect to login.
func (g *Guard) Check(sess *session.Store) error {
	user := sess.Identity()
	if user == nil {
		return &ErrNotAuthenticated{}
	}
	for _, r := range g.allowed {
		if user.Role == r {
			return nil
		}
	}
	return &ErrForbidden{Role: user.Role, Allowed: g.allowed}
}
