package types

import "time"

// TemporaryGrant holds permissions until ExpiresAt
type TemporaryGrant struct {
	Key         string
	Permissions PermissionSet
	ExpiresAt   time.Time
}

// Expired tells if the grant stopped applying at or before now
func (g *TemporaryGrant) Expired(now time.Time) bool {
	return !now.Before(g.ExpiresAt)
}

// Clock tells the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads time.Now, which carries a monotonic reading
var SystemClock Clock = ClockFunc(time.Now)
