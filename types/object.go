package types

import "strings"

// ResourceAccessMap tells, per resource and action of the resource table,
// whether the effective permission set holds "<resource>.<action>" literally
type ResourceAccessMap map[string]map[string]bool

// Clone returns a deep copy of m
func (m ResourceAccessMap) Clone() ResourceAccessMap {
	out := make(ResourceAccessMap, len(m))
	for res, acts := range m {
		cp := make(map[string]bool, len(acts))
		for act, ok := range acts {
			cp[act] = ok
		}
		out[res] = cp
	}
	return out
}

// PermissionLevel is the coarse access level a subject has on a resource
type PermissionLevel string

// permission levels, from the highest to the lowest
const (
	LevelManage PermissionLevel = "manage"
	LevelUpdate PermissionLevel = "update"
	LevelCreate PermissionLevel = "create"
	LevelView   PermissionLevel = "view"
	LevelNone   PermissionLevel = "none"
)

// ResourceScope lists the resources of one type a subject may reach.
// All means every resource of the type, and IDs is empty then.
type ResourceScope struct {
	All bool
	IDs []string
}

func (s ResourceScope) String() string {
	if s.All {
		return "all"
	}
	return strings.Join(s.IDs, ",")
}
