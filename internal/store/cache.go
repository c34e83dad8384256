package store

import "time"

// CacheKey is the decision cache key of permission checked within context
func CacheKey(permission, context string) string {
	if context == "" {
		context = "global"
	}
	return permission + "_" + context
}

type decision struct {
	result     bool
	at         time.Time
	validUntil time.Time // zero when only the ttl bounds the entry
}

// decisionCache keeps results of live evaluations for ttl
type decisionCache struct {
	ttl     time.Duration
	entries map[string]decision
}

func newDecisionCache(ttl time.Duration) *decisionCache {
	return &decisionCache{
		ttl:     ttl,
		entries: make(map[string]decision),
	}
}

func (c *decisionCache) fresh(d decision, now time.Time) bool {
	if now.Sub(d.at) >= c.ttl {
		return false
	}
	return d.validUntil.IsZero() || now.Before(d.validUntil)
}

func (c *decisionCache) get(key string, now time.Time) (bool, bool) {
	d, ok := c.entries[key]
	if !ok {
		return false, false
	}
	if !c.fresh(d, now) {
		delete(c.entries, key)
		return false, false
	}
	return d.result, true
}

func (c *decisionCache) set(key string, result bool, now, validUntil time.Time) {
	c.entries[key] = decision{result: result, at: now, validUntil: validUntil}
}

func (c *decisionCache) clear() {
	c.entries = make(map[string]decision)
}

// prune drops stale entries and returns how many were dropped
func (c *decisionCache) prune(now time.Time) int {
	n := 0
	for key, d := range c.entries {
		if !c.fresh(d, now) {
			delete(c.entries, key)
			n++
		}
	}
	return n
}
