package types

import (
	"context"
	"time"
)

// Authorizer is the top level interface for end use.
// It decides if the current identity can do something, with knowledge of the role table,
// contextual and temporary grants, and answers derived questions about resources.
type Authorizer interface {
	Checker
	Resourcer
	Granter
	Requester
	Lifecycle
}

// Checker answers permission and role questions about the current identity.
// A denial is a false return, never an error.
type Checker interface {
	// HasPermission tells if the identity holds permission, optionally within a context key
	HasPermission(permission, context string) bool

	// HasAnyPermission tells if any of permissions passes
	HasAnyPermission(permissions []string, context string) bool

	// HasAllPermissions tells if every one of permissions passes
	HasAllPermissions(permissions []string, context string) bool

	// HasRole tells if the identity has exactly role
	HasRole(role Role) bool

	// HasAnyRole tells if the identity has any of roles
	HasAnyRole(roles ...Role) bool
}

// Resourcer answers resource level questions built on Checker
type Resourcer interface {
	// CanAccess tells if action is permitted on resource, action defaults to view
	CanAccess(resource, action, context string) bool
	CanManage(resource, context string) bool
	CanView(resource, context string) bool
	CanCreate(resource, context string) bool
	CanUpdate(resource, context string) bool
	CanDelete(resource, context string) bool

	// ResourcePermissions returns the precomputed action map of resource
	ResourcePermissions(resource string) map[string]bool

	// PermissionLevel returns the highest level passing on resource
	PermissionLevel(resource, context string) PermissionLevel

	// RoleRank returns the rank of role, unknown roles rank 0
	RoleRank(role Role) int

	// CurrentRoleRank returns the rank of the current identity's role
	CurrentRoleRank() int

	// CanManageUser tells if the identity outranks target and holds users.manage
	CanManageUser(target *Identity) bool

	// AccessibleResources returns the resources of kind the identity may reach
	AccessibleResources(kind string) ResourceScope

	// ValidateResourceAccess tells if action is permitted on a single resource
	ValidateResourceAccess(id, kind, action string) bool

	// MenuPermissions tells which navigation sections can be viewed
	MenuPermissions() map[string]bool
}

// Granter manages contextual and temporary grants
type Granter interface {
	// SetContextualPermissions replaces the permissions bound to context
	SetContextualPermissions(context string, permissions []string)

	// ClearContextualPermissions drops the permissions bound to context
	ClearContextualPermissions(context string)

	// GrantTemporaryPermission grants permissions for d, or the default duration if d is 0.
	// The returned key revokes the grant early.
	GrantTemporaryPermission(permissions []string, d time.Duration) string

	// RevokeTemporaryPermission removes a grant, unknown keys are ignored
	RevokeTemporaryPermission(key string)

	// SweepExpired removes expired grants and returns how many were removed
	SweepExpired() int
}

// Requester drives the permission request workflow
type Requester interface {
	// RequestPermission asks the remote to approve permission, d is 0 when not time bounded
	RequestPermission(ctx context.Context, permission, reason string, d time.Duration) RequestResult

	// PermissionRequests lists requests accepted so far
	PermissionRequests() []PermissionRequest
}

// Lifecycle manages identity, cache and error state
type Lifecycle interface {
	// SetIdentity switches to identity, reloading only if it changed. nil signs out.
	SetIdentity(identity *Identity) error

	// LoadPermissions recomputes the effective permissions of the current identity
	LoadPermissions() error

	// UpdateCustomPermissions replaces the custom permissions of the current identity
	UpdateCustomPermissions(permissions []string)

	// ClearCache drops every cached decision
	ClearCache()

	// Error returns the last load failure
	Error() error

	// ClearError resets the last load failure
	ClearError()

	// Snapshot returns a copy of the current state
	Snapshot() State
}
