// Package rules holds the compiled-in role, action and resource tables.
// Nothing here changes at runtime.
package rules

import "github.com/supremind/portalperm/types"

// implying[a] is every action whose hierarchy entry contains a
var implying = func() map[types.Action]types.Action {
	m := make(map[types.Action]types.Action)
	for senior, implied := range actionHierarchy {
		for _, a := range implied.Split() {
			m[a] |= senior
		}
	}
	return m
}()

// RolePermissions returns the permissions of role, an unknown role has none
func RolePermissions(role types.Role) types.PermissionSet {
	return types.NewPermissionSet(rolePermissions[role]...)
}

// Roles returns every role of the role table
func Roles() []types.Role {
	roles := make([]types.Role, 0, len(rolePermissions))
	for r := range rolePermissions {
		roles = append(roles, r)
	}
	return roles
}

// Implies returns the actions implied by holding act
func Implies(act types.Action) types.Action {
	return actionHierarchy[act]
}

// Implying returns the actions which imply act, holding any of them on a resource satisfies act
func Implying(act types.Action) types.Action {
	return implying[act]
}

// Resources returns the resources of the resource table, in table order
func Resources() []string {
	out := make([]string, 0, len(resourceTable))
	for _, r := range resourceTable {
		out = append(out, r.resource)
	}
	return out
}

// ResourceActions returns the action tokens defined for resource
func ResourceActions(resource string) []string {
	for _, r := range resourceTable {
		if r.resource == resource {
			return append([]string(nil), r.actions...)
		}
	}
	return nil
}

// AccessMap computes the resource access map of perms
func AccessMap(perms types.PermissionSet) types.ResourceAccessMap {
	m := make(types.ResourceAccessMap, len(resourceTable))
	for _, r := range resourceTable {
		acts := make(map[string]bool, len(r.actions))
		for _, act := range r.actions {
			acts[act] = perms.Has(types.NewPermission(r.resource, act))
		}
		m[r.resource] = acts
	}
	return m
}

// Rank returns the rank of role for user management comparisons, unknown roles rank 0
func Rank(role types.Role) int {
	return roleRanks[role]
}

// MenuSections returns the navigation sections gated by view permissions
func MenuSections() []string {
	return append([]string(nil), menuSections...)
}
