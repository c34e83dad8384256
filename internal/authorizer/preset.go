package authorizer

import (
	"github.com/supremind/portalperm/internal/store"
	"github.com/supremind/portalperm/types"
)

// checkerWithPresets lets preset policies grant before the wrapped checker, and its cache, is asked
type checkerWithPresets struct {
	s       *store.Store
	presets []types.PresetPolicy
	types.Checker
}

func newCheckerWithPresets(s *store.Store, c types.Checker, presets ...types.PresetPolicy) *checkerWithPresets {
	return &checkerWithPresets{
		s:       s,
		presets: presets,
		Checker: c,
	}
}

func (c *checkerWithPresets) HasPermission(permission, context string) bool {
	id := c.s.Identity()
	if id == nil {
		return false
	}

	p := types.ParsePermission(permission)
	for _, preset := range c.presets {
		if preset(id, p) {
			return true
		}
	}

	return c.Checker.HasPermission(permission, context)
}

func (c *checkerWithPresets) HasAnyPermission(permissions []string, context string) bool {
	for _, p := range permissions {
		if c.HasPermission(p, context) {
			return true
		}
	}
	return false
}

func (c *checkerWithPresets) HasAllPermissions(permissions []string, context string) bool {
	for _, p := range permissions {
		if !c.HasPermission(p, context) {
			return false
		}
	}
	return true
}
