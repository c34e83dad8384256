// Package authorizer assembles the store, evaluator and request tracker into a types.Authorizer.
package authorizer

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-playground/validator/v10"

	"github.com/supremind/portalperm/internal/evaluator"
	"github.com/supremind/portalperm/internal/request"
	"github.com/supremind/portalperm/internal/store"
	"github.com/supremind/portalperm/types"
)

var _ types.Authorizer = (*authorizer)(nil)

type authorizer struct {
	s        *store.Store
	c        types.Checker
	t        *request.Tracker
	validate *validator.Validate
	l        logr.Logger
	err      error
}

// New creates an authorizer, safe for concurrent use.
// Presets are consulted for authenticated identities before the decision cache.
func New(s *store.Store, t *request.Tracker, l logr.Logger, presets ...types.PresetPolicy) types.Authorizer {
	var c types.Checker
	c = evaluator.New(s, l.WithName("evaluator"))
	c = newCheckerWithPresets(s, c, presets...)

	var a types.Authorizer
	a = &authorizer{
		s:        s,
		c:        c,
		t:        t,
		validate: validator.New(),
		l:        l,
	}
	a = newSyncedAuthorizer(a)

	return a
}

// HasPermission tells if the identity holds permission, optionally within a context key
func (a *authorizer) HasPermission(permission, context string) bool {
	return a.c.HasPermission(permission, context)
}

// HasAnyPermission tells if any of permissions passes
func (a *authorizer) HasAnyPermission(permissions []string, context string) bool {
	return a.c.HasAnyPermission(permissions, context)
}

// HasAllPermissions tells if every one of permissions passes
func (a *authorizer) HasAllPermissions(permissions []string, context string) bool {
	return a.c.HasAllPermissions(permissions, context)
}

// HasRole tells if the identity has exactly role
func (a *authorizer) HasRole(role types.Role) bool {
	return a.c.HasRole(role)
}

// HasAnyRole tells if the identity has any of roles
func (a *authorizer) HasAnyRole(roles ...types.Role) bool {
	return a.c.HasAnyRole(roles...)
}

// SetContextualPermissions replaces the permissions bound to context
func (a *authorizer) SetContextualPermissions(context string, permissions []string) {
	a.s.SetContextual(context, permissions)
}

// ClearContextualPermissions drops the permissions bound to context
func (a *authorizer) ClearContextualPermissions(context string) {
	a.s.ClearContextual(context)
}

// GrantTemporaryPermission grants permissions for d, or the default duration if d is 0
func (a *authorizer) GrantTemporaryPermission(permissions []string, d time.Duration) string {
	return a.s.GrantTemporary(permissions, d)
}

// RevokeTemporaryPermission removes a grant, unknown keys are ignored
func (a *authorizer) RevokeTemporaryPermission(key string) {
	if !a.s.RevokeTemporary(key) {
		a.l.V(6).Info("revoke unknown grant", "key", key)
	}
}

// SweepExpired removes expired grants and returns how many were removed
func (a *authorizer) SweepExpired() int {
	return a.s.SweepExpired()
}

// RequestPermission asks the remote to approve permission
func (a *authorizer) RequestPermission(ctx context.Context, permission, reason string, d time.Duration) types.RequestResult {
	return a.t.Submit(ctx, permission, reason, d)
}

// PermissionRequests lists requests accepted so far
func (a *authorizer) PermissionRequests() []types.PermissionRequest {
	return a.t.List()
}
