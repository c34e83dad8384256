package types

import "time"

// PresetPolicy decides on a permission before any table is consulted.
// Returning true grants the permission, false leaves the decision to the evaluator.
type PresetPolicy func(identity *Identity, permission Permission) bool

// State is a copy of an authorizer's state
type State struct {
	Identity          *Identity
	Permissions       []string
	RolePermissions   []string
	CustomPermissions []string
	ResourceAccess    ResourceAccessMap
	Contextual        map[string][]string
	Temporary         []TemporaryGrant
	CachedDecisions   int
	Requests          []PermissionRequest
	LastUpdated       time.Time
	Err               error
}
