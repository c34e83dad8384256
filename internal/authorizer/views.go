package authorizer

import (
	"github.com/supremind/portalperm/internal/rules"
	"github.com/supremind/portalperm/types"
)

// CanAccess tells if action is permitted on resource, action defaults to view
func (a *authorizer) CanAccess(resource, action, context string) bool {
	if action == "" {
		action = types.View.Token()
	}
	return a.c.HasPermission(types.NewPermission(resource, action).String(), context)
}

// CanManage tells if resource can be managed
func (a *authorizer) CanManage(resource, context string) bool {
	return a.CanAccess(resource, types.Manage.Token(), context)
}

// CanView tells if resource can be viewed, managing implies it
func (a *authorizer) CanView(resource, context string) bool {
	return a.CanAccess(resource, types.View.Token(), context) || a.CanManage(resource, context)
}

// CanCreate tells if resource can be created, managing implies it
func (a *authorizer) CanCreate(resource, context string) bool {
	return a.CanAccess(resource, types.Create.Token(), context) || a.CanManage(resource, context)
}

// CanUpdate tells if resource can be updated, managing implies it
func (a *authorizer) CanUpdate(resource, context string) bool {
	return a.CanAccess(resource, types.Update.Token(), context) || a.CanManage(resource, context)
}

// CanDelete tells if resource can be deleted, managing implies it
func (a *authorizer) CanDelete(resource, context string) bool {
	return a.CanAccess(resource, types.Delete.Token(), context) || a.CanManage(resource, context)
}

// ResourcePermissions returns the precomputed action map of resource
func (a *authorizer) ResourcePermissions(resource string) map[string]bool {
	return a.s.ResourceAccess(resource)
}

// PermissionLevel returns the highest level passing on resource.
// The order is fixed here and does not follow the action hierarchy.
func (a *authorizer) PermissionLevel(resource, context string) types.PermissionLevel {
	switch {
	case a.CanManage(resource, context):
		return types.LevelManage
	case a.CanUpdate(resource, context):
		return types.LevelUpdate
	case a.CanCreate(resource, context):
		return types.LevelCreate
	case a.CanView(resource, context):
		return types.LevelView
	default:
		return types.LevelNone
	}
}

// RoleRank returns the rank of role, unknown roles rank 0
func (a *authorizer) RoleRank(role types.Role) int {
	return rules.Rank(role)
}

// CurrentRoleRank returns the rank of the current identity's role, 0 when signed out
func (a *authorizer) CurrentRoleRank() int {
	id := a.s.Identity()
	if id == nil {
		return 0
	}
	return rules.Rank(id.Role)
}

// CanManageUser tells if the identity strictly outranks target and holds users.manage
func (a *authorizer) CanManageUser(target *types.Identity) bool {
	if target == nil {
		return false
	}
	if a.CurrentRoleRank() <= rules.Rank(target.Role) {
		return false
	}
	return a.c.HasPermission(types.NewPermission("users", types.Manage.Token()).String(), "")
}

// AccessibleResources returns every resource of kind when it can be managed,
// or else ids the identity owns followed by ids it is assigned to, without duplicates
func (a *authorizer) AccessibleResources(kind string) types.ResourceScope {
	id := a.s.Identity()
	if id == nil {
		return types.ResourceScope{}
	}
	if a.CanManage(kind, "") {
		return types.ResourceScope{All: true}
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, list := range [][]string{id.OwnedResources[kind], id.AssignedResources[kind]} {
		for _, rid := range list {
			if _, ok := seen[rid]; ok {
				continue
			}
			seen[rid] = struct{}{}
			ids = append(ids, rid)
		}
	}
	return types.ResourceScope{IDs: ids}
}

// ValidateResourceAccess tells if action is permitted on the resource id of kind:
// owners always pass, assignees and members of a company pass if the action is permitted on kind
func (a *authorizer) ValidateResourceAccess(rid, kind, action string) bool {
	id := a.s.Identity()
	switch {
	case id == nil:
		return false
	case id.Owns(kind, rid):
		return true
	case id.AssignedTo(kind, rid):
		return a.CanAccess(kind, action, "")
	case id.CompanyID != "":
		return a.CanAccess(kind, action, "")
	default:
		return false
	}
}

// MenuPermissions tells which navigation sections can be viewed
func (a *authorizer) MenuPermissions() map[string]bool {
	sections := rules.MenuSections()
	out := make(map[string]bool, len(sections))
	for _, section := range sections {
		out[section] = a.CanView(section, "")
	}
	return out
}
