package authorizer

import (
	"fmt"

	"github.com/supremind/portalperm/types"
)

// SetIdentity switches to identity. Permissions are reloaded only when the id, role
// or custom permissions differ from the loaded identity, nil signs out.
// An invalid identity signs out too, and is kept as the last error.
func (a *authorizer) SetIdentity(identity *types.Identity) error {
	if identity == nil {
		a.s.Unload()
		a.t.SetRequester("")
		return nil
	}

	if e := a.validate.Struct(identity); e != nil {
		a.err = fmt.Errorf("%w: %v", types.ErrInvalidIdentity, e)
		a.l.Error(a.err, "set identity", "identity", identity.ID)
		a.s.Unload()
		a.t.SetRequester("")
		return a.err
	}

	if changed(a.s.Identity(), identity) {
		a.s.Load(identity)
	} else {
		a.s.Refresh(identity)
	}
	a.t.SetRequester(identity.ID)
	a.err = nil

	return nil
}

// LoadPermissions recomputes the effective permissions of the current identity, if any
func (a *authorizer) LoadPermissions() error {
	id := a.s.Identity()
	if id == nil {
		return nil
	}

	if e := a.validate.Struct(id); e != nil {
		a.err = fmt.Errorf("%w: %v", types.ErrInvalidIdentity, e)
		a.l.Error(a.err, "load permissions", "identity", id.ID)
		a.s.Unload()
		a.t.SetRequester("")
		return a.err
	}

	a.s.Load(id)
	a.err = nil
	return nil
}

// UpdateCustomPermissions replaces the custom permissions of the current identity
func (a *authorizer) UpdateCustomPermissions(permissions []string) {
	a.s.UpdateCustomPermissions(permissions)
}

// ClearCache drops every cached decision
func (a *authorizer) ClearCache() {
	a.s.CacheClear()
}

// Error returns the last load failure
func (a *authorizer) Error() error {
	return a.err
}

// ClearError resets the last load failure
func (a *authorizer) ClearError() {
	a.err = nil
}

// Snapshot returns a copy of the current state
func (a *authorizer) Snapshot() types.State {
	st := a.s.Snapshot()
	st.Requests = a.t.List()
	st.Err = a.err
	return st
}

func changed(loaded, next *types.Identity) bool {
	if loaded == nil {
		return true
	}
	if loaded.ID != next.ID || loaded.Role != next.Role {
		return true
	}
	if len(loaded.CustomPermissions) != len(next.CustomPermissions) {
		return true
	}
	for i := range loaded.CustomPermissions {
		if loaded.CustomPermissions[i] != next.CustomPermissions[i] {
			return true
		}
	}
	return false
}
