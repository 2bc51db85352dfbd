package repository

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DenyList stores the identifiers (jti claims) of revoked identity tokens.
// Logout writes the token's jti here and the JWT middleware consults it on
// every authenticated request.
//
// When a Redis client is available, entries are stored under a prefixed key
// with a TTL equal to the token's remaining lifetime, so revocations are
// shared across processes and expire together with the token.  When Redis
// is unavailable the store degrades to an in-process map guarded by a
// mutex; those entries are lost on restart, which is acceptable because
// the tokens they refer to are still bounded by their own expiry.
type DenyList struct {
	rdb *redis.Client

	mu    sync.RWMutex
	local map[string]time.Time // jti -> entry expiry
}

const denyKeyPrefix = "deny:jti:"

// NewDenyList builds a DenyList.  rdb may be nil, in which case the
// in-process fallback is used.
func NewDenyList(rdb *redis.Client) *DenyList {
	return &DenyList{rdb: rdb, local: make(map[string]time.Time)}
}

// Revoke marks a token identifier as revoked for the given duration.
// Durations of zero or less mean the token has already expired and there
// is nothing to store.
func (d *DenyList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if d.rdb != nil {
		return d.rdb.Set(ctx, denyKeyPrefix+jti, "1", ttl).Err()
	}
	d.mu.Lock()
	d.local[jti] = time.Now().UTC().Add(ttl)
	d.mu.Unlock()
	return nil
}

// IsRevoked reports whether a token identifier has been revoked.  Redis
// errors are treated as "not revoked" so that a broken Redis connection
// does not lock every caller out.
func (d *DenyList) IsRevoked(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}
	if d.rdb != nil {
		n, err := d.rdb.Exists(ctx, denyKeyPrefix+jti).Result()
		return err == nil && n > 0
	}
	d.mu.RLock()
	exp, ok := d.local[jti]
	d.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().UTC().After(exp) {
		// Entry outlived the token it was guarding; drop it.
		d.mu.Lock()
		delete(d.local, jti)
		d.mu.Unlock()
		return false
	}
	return true
}
