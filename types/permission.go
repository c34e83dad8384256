package types

import (
	"sort"
	"strings"
)

// Permission is a resource-action pair, written as "<resource>.<action>" outside this module.
// A permission without a "." separator, or with an empty resource or action, is malformed:
// it keeps its raw text in Resource and an empty Action. Malformed permissions can still be
// granted and checked literally, they just never take part in hierarchy expansion.
type Permission struct {
	Resource string
	Action   string
}

// ParsePermission splits s at its first "."
func ParsePermission(s string) Permission {
	res, act, ok := strings.Cut(s, ".")
	if !ok || res == "" || act == "" {
		return Permission{Resource: s}
	}
	return Permission{Resource: res, Action: act}
}

// NewPermission builds a permission from its parts
func NewPermission(resource, action string) Permission {
	return ParsePermission(resource + "." + action)
}

// Valid tells if the permission has both a resource and an action
func (p Permission) Valid() bool {
	return p.Action != ""
}

// KnownAction returns the Action for the permission's action token, if it is a known one
func (p Permission) KnownAction() (Action, bool) {
	if !p.Valid() {
		return None, false
	}
	return ParseAction(p.Action)
}

func (p Permission) String() string {
	if !p.Valid() {
		return p.Resource
	}
	return p.Resource + "." + p.Action
}

// PermissionSet is a set of permissions, duplicates collapse on insertion
type PermissionSet map[Permission]struct{}

// NewPermissionSet parses perms into a set
func NewPermissionSet(perms ...string) PermissionSet {
	s := make(PermissionSet, len(perms))
	s.Add(perms...)
	return s
}

// Add parses and inserts perms
func (s PermissionSet) Add(perms ...string) {
	for _, p := range perms {
		s[ParsePermission(p)] = struct{}{}
	}
}

// Has tells if p is a member of the set
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Union returns a new set with members of both s and o
func (s PermissionSet) Union(o PermissionSet) PermissionSet {
	out := make(PermissionSet, len(s)+len(o))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range o {
		out[p] = struct{}{}
	}
	return out
}

// Clone returns a copy of s
func (s PermissionSet) Clone() PermissionSet {
	return s.Union(nil)
}

// List returns members in their string form, sorted
func (s PermissionSet) List() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p.String())
	}
	sort.Strings(out)
	return out
}
