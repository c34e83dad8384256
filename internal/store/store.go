// Package store keeps the permission state of one authenticated session:
// effective permissions, contextual and temporary grants, and the decision cache.
// A Store is not safe for concurrent use, callers serialize access.
package store

import (
	"sort"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/supremind/portalperm/internal/rules"
	"github.com/supremind/portalperm/types"
)

// default lifetimes
const (
	DefaultCacheTTL      = 5 * time.Minute
	DefaultGrantDuration = time.Hour
)

// Config controls lifetimes of cached decisions and temporary grants
type Config struct {
	CacheTTL      time.Duration
	GrantDuration time.Duration
}

// Store holds the permission state, every mutation of permissions clears the decision cache
type Store struct {
	clock types.Clock
	log   logr.Logger
	grant time.Duration

	identity    *types.Identity
	role        types.PermissionSet
	custom      types.PermissionSet
	effective   types.PermissionSet
	access      types.ResourceAccessMap
	contextual  map[string]types.PermissionSet
	temporary   map[string]*types.TemporaryGrant
	cache       *decisionCache
	lastUpdated time.Time
}

// New creates an empty store, zero config values fall back to defaults
func New(clock types.Clock, l logr.Logger, cfg Config) *Store {
	if clock == nil {
		clock = types.SystemClock
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.GrantDuration <= 0 {
		cfg.GrantDuration = DefaultGrantDuration
	}

	return &Store{
		clock:      clock,
		log:        l,
		grant:      cfg.GrantDuration,
		role:       types.PermissionSet{},
		custom:     types.PermissionSet{},
		effective:  types.PermissionSet{},
		access:     rules.AccessMap(nil),
		contextual: make(map[string]types.PermissionSet),
		temporary:  make(map[string]*types.TemporaryGrant),
		cache:      newDecisionCache(cfg.CacheTTL),
	}
}

// Now reads the store's clock
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// Load computes the effective permissions of identity and its resource access map.
// Switching to another identity id also drops contextual and temporary grants of the previous one.
// A nil identity unloads.
func (s *Store) Load(identity *types.Identity) {
	if identity == nil {
		s.Unload()
		return
	}

	if s.identity != nil && s.identity.ID != identity.ID {
		s.contextual = make(map[string]types.PermissionSet)
		s.temporary = make(map[string]*types.TemporaryGrant)
	}

	s.identity = cloneIdentity(identity)
	s.role = rules.RolePermissions(identity.Role)
	s.custom = types.NewPermissionSet(identity.CustomPermissions...)
	s.recompute()

	s.log.V(4).Info("load permissions", "identity", identity.ID, "role", identity.Role,
		"role permissions", len(s.role), "custom permissions", len(s.custom))
}

// Refresh replaces ownership, assignment and company data of the loaded identity,
// without touching permissions or grants. With nothing loaded it loads identity.
func (s *Store) Refresh(identity *types.Identity) {
	if s.identity == nil || identity == nil {
		s.Load(identity)
		return
	}
	custom := s.identity.CustomPermissions
	s.identity = cloneIdentity(identity)
	s.identity.CustomPermissions = custom
}

// Unload forgets the identity and every grant
func (s *Store) Unload() {
	s.log.V(4).Info("unload permissions")

	s.identity = nil
	s.role = types.PermissionSet{}
	s.custom = types.PermissionSet{}
	s.contextual = make(map[string]types.PermissionSet)
	s.temporary = make(map[string]*types.TemporaryGrant)
	s.recompute()
}

// UpdateCustomPermissions replaces custom permissions of the loaded identity
func (s *Store) UpdateCustomPermissions(perms []string) {
	s.log.V(4).Info("update custom permissions", "permissions", perms)

	s.custom = types.NewPermissionSet(perms...)
	if s.identity != nil {
		s.identity.CustomPermissions = append([]string(nil), perms...)
	}
	s.recompute()
}

// recompute replaces the effective set wholesale, then invalidates everything derived from it
func (s *Store) recompute() {
	s.effective = s.role.Union(s.custom)
	s.access = rules.AccessMap(s.effective)
	s.lastUpdated = s.clock.Now()
	s.cache.clear()
}

// Authenticated tells if an identity is loaded
func (s *Store) Authenticated() bool {
	return s.identity != nil
}

// Identity returns the loaded identity, nil if none
func (s *Store) Identity() *types.Identity {
	return s.identity
}

// Effective returns the effective permission set, callers must not modify it
func (s *Store) Effective() types.PermissionSet {
	return s.effective
}

// ResourceAccess returns the action map of resource, empty for resources outside the table
func (s *Store) ResourceAccess(resource string) map[string]bool {
	acts := make(map[string]bool, len(s.access[resource]))
	for act, ok := range s.access[resource] {
		acts[act] = ok
	}
	return acts
}

// SetContextual replaces the permissions bound to key, an empty list revokes them
func (s *Store) SetContextual(key string, perms []string) {
	s.log.V(4).Info("set contextual permissions", "context", key, "permissions", perms)

	if len(perms) == 0 {
		delete(s.contextual, key)
	} else {
		s.contextual[key] = types.NewPermissionSet(perms...)
	}
	s.cache.clear()
}

// ClearContextual drops the permissions bound to key
func (s *Store) ClearContextual(key string) {
	s.SetContextual(key, nil)
}

// Contextual returns permissions bound to key, callers must not modify it
func (s *Store) Contextual(key string) types.PermissionSet {
	return s.contextual[key]
}

// GrantTemporary grants perms for d, or the default duration when d is not positive
func (s *Store) GrantTemporary(perms []string, d time.Duration) string {
	if d <= 0 {
		d = s.grant
	}

	id, e := uuid.NewV7()
	if e != nil {
		id = uuid.New()
	}
	g := &types.TemporaryGrant{
		Key:         id.String(),
		Permissions: types.NewPermissionSet(perms...),
		ExpiresAt:   s.clock.Now().Add(d),
	}
	s.temporary[g.Key] = g
	s.cache.clear()

	s.log.V(4).Info("grant temporary permissions", "key", g.Key, "permissions", perms, "expires at", g.ExpiresAt)
	return g.Key
}

// RevokeTemporary removes the grant under key, returns false if there was none
func (s *Store) RevokeTemporary(key string) bool {
	if _, ok := s.temporary[key]; !ok {
		return false
	}

	s.log.V(4).Info("revoke temporary permissions", "key", key)
	delete(s.temporary, key)
	s.cache.clear()
	return true
}

// SweepExpired removes expired grants and stale cache entries, returns number of grants removed
func (s *Store) SweepExpired() int {
	now := s.clock.Now()
	n := 0
	for key, g := range s.temporary {
		if g.Expired(now) {
			delete(s.temporary, key)
			n++
		}
	}
	pruned := s.cache.prune(now)
	if n > 0 {
		s.cache.clear()
	}

	s.log.V(4).Info("sweep expired", "grants", n, "decisions", pruned)
	return n
}

// ActiveGrant looks for unexpired grants holding p, and returns the latest expiry among them
func (s *Store) ActiveGrant(p types.Permission) (time.Time, bool) {
	now := s.clock.Now()
	var until time.Time
	found := false
	for _, g := range s.temporary {
		if g.Expired(now) || !g.Permissions.Has(p) {
			continue
		}
		if !found || g.ExpiresAt.After(until) {
			until = g.ExpiresAt
		}
		found = true
	}
	return until, found
}

// CacheGet returns a cached decision which is still fresh
func (s *Store) CacheGet(key string) (bool, bool) {
	return s.cache.get(key, s.clock.Now())
}

// CacheSet stores a decision, validUntil caps its lifetime below the ttl unless zero
func (s *Store) CacheSet(key string, result bool, validUntil time.Time) {
	s.cache.set(key, result, s.clock.Now(), validUntil)
}

// CacheClear drops every cached decision
func (s *Store) CacheClear() {
	s.log.V(4).Info("clear decision cache")
	s.cache.clear()
}

// CacheLen returns the number of cached decisions, fresh or not
func (s *Store) CacheLen() int {
	return len(s.cache.entries)
}

// Snapshot returns a copy of the state
func (s *Store) Snapshot() types.State {
	st := types.State{
		Identity:          cloneIdentity(s.identity),
		Permissions:       s.effective.List(),
		RolePermissions:   s.role.List(),
		CustomPermissions: s.custom.List(),
		ResourceAccess:    s.access.Clone(),
		Contextual:        make(map[string][]string, len(s.contextual)),
		Temporary:         make([]types.TemporaryGrant, 0, len(s.temporary)),
		CachedDecisions:   len(s.cache.entries),
		LastUpdated:       s.lastUpdated,
	}
	for key, perms := range s.contextual {
		st.Contextual[key] = perms.List()
	}
	for _, g := range s.temporary {
		st.Temporary = append(st.Temporary, types.TemporaryGrant{
			Key:         g.Key,
			Permissions: g.Permissions.Clone(),
			ExpiresAt:   g.ExpiresAt,
		})
	}
	sort.Slice(st.Temporary, func(i, j int) bool {
		return st.Temporary[i].ExpiresAt.Before(st.Temporary[j].ExpiresAt)
	})
	return st
}

func cloneIdentity(i *types.Identity) *types.Identity {
	if i == nil {
		return nil
	}
	c := *i
	c.CustomPermissions = append([]string(nil), i.CustomPermissions...)
	c.OwnedResources = cloneIDs(i.OwnedResources)
	c.AssignedResources = cloneIDs(i.AssignedResources)
	return &c
}

func cloneIDs(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, ids := range m {
		out[k] = append([]string(nil), ids...)
	}
	return out
}
