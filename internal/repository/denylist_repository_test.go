package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The in-process fallback is what tests exercise; the Redis path uses the
// same key semantics with the TTL handled server-side.

func TestDenyListRevoke(t *testing.T) {
	d := NewDenyList(nil)
	ctx := context.Background()

	assert.False(t, d.IsRevoked(ctx, "some-jti"))

	require.NoError(t, d.Revoke(ctx, "some-jti", time.Hour))
	assert.True(t, d.IsRevoked(ctx, "some-jti"))
	assert.False(t, d.IsRevoked(ctx, "other-jti"))
}

func TestDenyListEntryExpires(t *testing.T) {
	d := NewDenyList(nil)
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "short-lived", 10*time.Millisecond))
	assert.True(t, d.IsRevoked(ctx, "short-lived"))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, d.IsRevoked(ctx, "short-lived"))
}

func TestDenyListIgnoresEmptyAndExpired(t *testing.T) {
	d := NewDenyList(nil)
	ctx := context.Background()

	// Empty jti and non-positive TTLs are no-ops.
	require.NoError(t, d.Revoke(ctx, "", time.Hour))
	require.NoError(t, d.Revoke(ctx, "already-expired", -time.Minute))
	assert.False(t, d.IsRevoked(ctx, ""))
	assert.False(t, d.IsRevoked(ctx, "already-expired"))
}
