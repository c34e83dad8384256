package portalperm

import "github.com/supremind/portalperm/types"

// SuperRole can do any action on anything, even on resources no table knows
func SuperRole(role types.Role) types.PresetPolicy {
	return func(identity *types.Identity, _ types.Permission) bool {
		return identity != nil && identity.Role == role
	}
}

// Everybody specifies that every signed in identity holds perm.
// The wildcard "*" as action matches every action on the resource.
func Everybody(perm string) types.PresetPolicy {
	want := types.ParsePermission(perm)
	return func(_ *types.Identity, p types.Permission) bool {
		if want.Action == "*" {
			return p.Valid() && p.Resource == want.Resource
		}
		return p == want
	}
}
