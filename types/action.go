package types

import "strings"

// Action is the action token of a permission, like "view" in "properties.view".
// Actions are power of twos so that an Action value is also a set of actions,
// which is how the action hierarchy is expressed.
type Action uint32

// known actions, tokens outside this list are legal in permissions but never expand
const (
	View Action = 1 << iota
	Read
	Create
	Update
	Delete
	Manage
	Invite
	Export
	Assign
	Send
	Download

	None Action = 0
)

// AllActions is union of all known actions
const AllActions = View | Read | Create | Update | Delete | Manage | Invite | Export | Assign | Send | Download

var actionNames = map[Action]string{
	View:     "view",
	Read:     "read",
	Create:   "create",
	Update:   "update",
	Delete:   "delete",
	Manage:   "manage",
	Invite:   "invite",
	Export:   "export",
	Assign:   "assign",
	Send:     "send",
	Download: "download",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, n := range actionNames {
		m[n] = a
	}
	return m
}()

// ParseAction returns the known action named by token
func ParseAction(token string) (Action, bool) {
	a, ok := actionsByName[token]
	return a, ok
}

// IsIn tells if all actions in a are members of b: a is subset of b
func (a Action) IsIn(b Action) bool {
	return a|b == b
}

// Includes tells if all actions in b are members of a: a is superset of b
func (a Action) Includes(b Action) bool {
	return b.IsIn(a)
}

// Difference returns set of actions belong to a but not b: complement of b in a
func (a Action) Difference(b Action) Action {
	return a &^ b
}

// Split a union of actions to slice of single actions
func (a Action) Split() []Action {
	out := make([]Action, 0)
	op := Action(1)
	for op != 0 && op <= a {
		if op&a > 0 {
			out = append(out, op)
		}
		op <<= 1
	}
	return out
}

// Token returns the name of a single action, or "" for unions and unknown bits
func (a Action) Token() string {
	return actionNames[a]
}

func (a Action) String() string {
	as := a.Split()
	ns := make([]string, 0, len(as))
	for _, a := range as {
		n, ok := actionNames[a]
		if !ok {
			n = "unknown"
		}
		ns = append(ns, n)
	}
	return strings.Join(ns, "|")
}
