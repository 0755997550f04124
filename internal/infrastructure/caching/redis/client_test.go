package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := New("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("set_get_roundtrip", func(t *testing.T) {
		c, _ := newTestClient(t)
		require.NoError(t, c.Set(ctx, "stats:kind", map[string]int{"mail": 3}, time.Minute))

		var got map[string]int
		ok, err := c.Get(ctx, "stats:kind", &got)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, got["mail"])
	})

	t.Run("miss_is_not_an_error", func(t *testing.T) {
		c, _ := newTestClient(t)
		var got map[string]int
		ok, err := c.Get(ctx, "missing", &got)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ttl_expiry", func(t *testing.T) {
		c, mr := newTestClient(t)
		require.NoError(t, c.Set(ctx, "k", 1, time.Second))
		mr.FastForward(2 * time.Second)

		var got int
		ok, err := c.Get(ctx, "k", &got)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		c, mr := newTestClient(t)
		require.NoError(t, c.Set(ctx, "a", 1, 0))
		require.NoError(t, c.Delete(ctx, "a"))
		require.NoError(t, c.Delete(ctx))
		assert.False(t, mr.Exists("a"))
	})

	t.Run("bad_url", func(t *testing.T) {
		_, err := New("not-a-url")
		assert.Error(t, err)
	})
}
