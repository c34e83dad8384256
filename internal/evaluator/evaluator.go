// Package evaluator decides permission checks against a store.
package evaluator

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/supremind/portalperm/internal/rules"
	"github.com/supremind/portalperm/internal/store"
	"github.com/supremind/portalperm/types"
)

var _ types.Checker = (*Evaluator)(nil)

// Evaluator answers checks from the effective, contextual and temporary permissions of a store,
// caching every live result. It is not safe for concurrent use.
type Evaluator struct {
	s *store.Store
	l logr.Logger
}

// New creates an evaluator over s
func New(s *store.Store, l logr.Logger) *Evaluator {
	return &Evaluator{s: s, l: l}
}

// HasPermission evaluates in order: cache, direct membership, hierarchy, context, temporary grants.
// First match wins, the result is cached whatever it is.
func (e *Evaluator) HasPermission(permission, context string) bool {
	if !e.s.Authenticated() {
		return false
	}

	key := store.CacheKey(permission, context)
	if result, ok := e.s.CacheGet(key); ok {
		e.l.V(6).Info("cached decision", "permission", permission, "context", context, "allowed", result)
		return result
	}

	p := types.ParsePermission(permission)
	var until time.Time
	allowed, how := e.evaluate(p, context)
	if !allowed {
		until, allowed = e.s.ActiveGrant(p)
		if allowed {
			how = "temporary"
		}
	}

	e.s.CacheSet(key, allowed, until)

	e.l.V(6).Info("decision", "permission", permission, "context", context, "allowed", allowed, "by", how)
	return allowed
}

func (e *Evaluator) evaluate(p types.Permission, context string) (bool, string) {
	effective := e.s.Effective()
	if effective.Has(p) {
		return true, "direct"
	}

	// a malformed permission or an action outside the hierarchy has no seniors
	if act, ok := p.KnownAction(); ok {
		for _, senior := range rules.Implying(act).Split() {
			if effective.Has(types.NewPermission(p.Resource, senior.Token())) {
				return true, "hierarchy"
			}
		}
	}

	if context != "" && e.s.Contextual(context).Has(p) {
		return true, "context"
	}

	return false, ""
}

// HasAnyPermission tells if any of permissions passes, stopping at the first one
func (e *Evaluator) HasAnyPermission(permissions []string, context string) bool {
	for _, p := range permissions {
		if e.HasPermission(p, context) {
			return true
		}
	}
	return false
}

// HasAllPermissions tells if every one of permissions passes, stopping at the first failure
func (e *Evaluator) HasAllPermissions(permissions []string, context string) bool {
	for _, p := range permissions {
		if !e.HasPermission(p, context) {
			return false
		}
	}
	return true
}

// HasRole tells if the identity has exactly role
func (e *Evaluator) HasRole(role types.Role) bool {
	id := e.s.Identity()
	return id != nil && id.Role == role
}

// HasAnyRole tells if the identity has any of roles
func (e *Evaluator) HasAnyRole(roles ...types.Role) bool {
	for _, r := range roles {
		if e.HasRole(r) {
			return true
		}
	}
	return false
}
