package authorizer

import (
	"context"
	"sync"
	"time"

	"github.com/supremind/portalperm/types"
)

var _ types.Authorizer = (*syncedAuthorizer)(nil)

// syncedAuthorizer makes the given authorizer be safe in concurrent usages.
// Checks write the decision cache, so every call takes the exclusive lock,
// except requests, which are tracked apart and must not block checks while the sink works.
type syncedAuthorizer struct {
	sync.Mutex
	authz types.Authorizer
}

func newSyncedAuthorizer(authz types.Authorizer) *syncedAuthorizer {
	return &syncedAuthorizer{authz: authz}
}

// HasPermission tells if the identity holds permission
func (authz *syncedAuthorizer) HasPermission(permission, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.HasPermission(permission, context)
}

// HasAnyPermission tells if any of permissions passes
func (authz *syncedAuthorizer) HasAnyPermission(permissions []string, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.HasAnyPermission(permissions, context)
}

// HasAllPermissions tells if every one of permissions passes
func (authz *syncedAuthorizer) HasAllPermissions(permissions []string, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.HasAllPermissions(permissions, context)
}

// HasRole tells if the identity has exactly role
func (authz *syncedAuthorizer) HasRole(role types.Role) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.HasRole(role)
}

// HasAnyRole tells if the identity has any of roles
func (authz *syncedAuthorizer) HasAnyRole(roles ...types.Role) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.HasAnyRole(roles...)
}

// CanAccess tells if action is permitted on resource
func (authz *syncedAuthorizer) CanAccess(resource, action, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.CanAccess(resource, action, context)
}

// CanManage tells if resource can be managed
func (authz *syncedAuthorizer) CanManage(resource, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.CanManage(resource, context)
}

// CanView tells if resource can be viewed
func (authz *syncedAuthorizer) CanView(resource, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.CanView(resource, context)
}

// CanCreate tells if resource can be created
func (authz *syncedAuthorizer) CanCreate(resource, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.CanCreate(resource, context)
}

// CanUpdate tells if resource can be updated
func (authz *syncedAuthorizer) CanUpdate(resource, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.CanUpdate(resource, context)
}

// CanDelete tells if resource can be deleted
func (authz *syncedAuthorizer) CanDelete(resource, context string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.CanDelete(resource, context)
}

// ResourcePermissions returns the precomputed action map of resource
func (authz *syncedAuthorizer) ResourcePermissions(resource string) map[string]bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.ResourcePermissions(resource)
}

// PermissionLevel returns the highest level passing on resource
func (authz *syncedAuthorizer) PermissionLevel(resource, context string) types.PermissionLevel {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.PermissionLevel(resource, context)
}

// RoleRank returns the rank of role
func (authz *syncedAuthorizer) RoleRank(role types.Role) int {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.RoleRank(role)
}

// CurrentRoleRank returns the rank of the current identity's role
func (authz *syncedAuthorizer) CurrentRoleRank() int {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.CurrentRoleRank()
}

// CanManageUser tells if the identity outranks target and holds users.manage
func (authz *syncedAuthorizer) CanManageUser(target *types.Identity) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.CanManageUser(target)
}

// AccessibleResources returns the resources of kind the identity may reach
func (authz *syncedAuthorizer) AccessibleResources(kind string) types.ResourceScope {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.AccessibleResources(kind)
}

// ValidateResourceAccess tells if action is permitted on a single resource
func (authz *syncedAuthorizer) ValidateResourceAccess(id, kind, action string) bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.ValidateResourceAccess(id, kind, action)
}

// MenuPermissions tells which navigation sections can be viewed
func (authz *syncedAuthorizer) MenuPermissions() map[string]bool {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.MenuPermissions()
}

// SetContextualPermissions replaces the permissions bound to context
func (authz *syncedAuthorizer) SetContextualPermissions(context string, permissions []string) {
	authz.Lock()
	defer authz.Unlock()

	authz.authz.SetContextualPermissions(context, permissions)
}

// ClearContextualPermissions drops the permissions bound to context
func (authz *syncedAuthorizer) ClearContextualPermissions(context string) {
	authz.Lock()
	defer authz.Unlock()

	authz.authz.ClearContextualPermissions(context)
}

// GrantTemporaryPermission grants permissions for a while
func (authz *syncedAuthorizer) GrantTemporaryPermission(permissions []string, d time.Duration) string {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.GrantTemporaryPermission(permissions, d)
}

// RevokeTemporaryPermission removes a grant
func (authz *syncedAuthorizer) RevokeTemporaryPermission(key string) {
	authz.Lock()
	defer authz.Unlock()

	authz.authz.RevokeTemporaryPermission(key)
}

// SweepExpired removes expired grants
func (authz *syncedAuthorizer) SweepExpired() int {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.SweepExpired()
}

// SetIdentity switches to identity
func (authz *syncedAuthorizer) SetIdentity(identity *types.Identity) error {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.SetIdentity(identity)
}

// LoadPermissions recomputes the effective permissions
func (authz *syncedAuthorizer) LoadPermissions() error {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.LoadPermissions()
}

// UpdateCustomPermissions replaces the custom permissions
func (authz *syncedAuthorizer) UpdateCustomPermissions(permissions []string) {
	authz.Lock()
	defer authz.Unlock()

	authz.authz.UpdateCustomPermissions(permissions)
}

// ClearCache drops every cached decision
func (authz *syncedAuthorizer) ClearCache() {
	authz.Lock()
	defer authz.Unlock()

	authz.authz.ClearCache()
}

// Error returns the last load failure
func (authz *syncedAuthorizer) Error() error {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.Error()
}

// ClearError resets the last load failure
func (authz *syncedAuthorizer) ClearError() {
	authz.Lock()
	defer authz.Unlock()

	authz.authz.ClearError()
}

// Snapshot returns a copy of the current state
func (authz *syncedAuthorizer) Snapshot() types.State {
	authz.Lock()
	defer authz.Unlock()

	return authz.authz.Snapshot()
}

// RequestPermission asks the remote to approve permission
func (authz *syncedAuthorizer) RequestPermission(ctx context.Context, permission, reason string, d time.Duration) types.RequestResult {
	return authz.authz.RequestPermission(ctx, permission, reason, d)
}

// PermissionRequests lists requests accepted so far
func (authz *syncedAuthorizer) PermissionRequests() []types.PermissionRequest {
	return authz.authz.PermissionRequests()
}
