package cache

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/luckysign/internal/logger"
)

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := Open(Config{TTL: ttl, MaxBytes: 32 << 20}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestOpen_InvalidConfig(t *testing.T) {
	_, err := Open(Config{TTL: 0, MaxBytes: 1 << 20}, logger.Discard())
	assert.Error(t, err)

	_, err = Open(Config{TTL: time.Minute}, logger.Discard())
	assert.Error(t, err)
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "render:missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "render:a", []byte("png bytes")))

	got, ok, err := c.Get(ctx, "render:a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("png bytes"), got)

	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())
}

func TestCache_JSON(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	type entry struct {
		ETag string `json:"etag"`
		Size int    `json:"size"`
	}

	require.NoError(t, c.SetJSON(ctx, "meta:1", entry{ETag: `"abc"`, Size: 2}))

	var got entry
	ok, err := c.GetJSON(ctx, "meta:1", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry{ETag: `"abc"`, Size: 2}, got)

	ok, err = c.GetJSON(ctx, "meta:2", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_SkipsOversizedValues(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	big := bytes.Repeat([]byte{1}, c.maxValue+1)
	require.NoError(t, c.Set(ctx, "render:big", big))

	_, ok, err := c.Get(ctx, "render:big")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Skipped)
}

func TestCache_Expiry(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a TTL to pass")
	}
	c := newTestCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "render:short", []byte("x")))
	time.Sleep(2100 * time.Millisecond)

	_, ok, err := c.Get(ctx, "render:short")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	type req struct {
		Date string `json:"date"`
		Size int    `json:"size"`
	}

	a, err := Key("render", req{Date: "01.01.2000.", Size: 1})
	require.NoError(t, err)
	b, err := Key("render", req{Date: "01.01.2000.", Size: 1})
	require.NoError(t, err)
	other, err := Key("render", req{Date: "01.01.2000.", Size: 2})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.True(t, strings.HasPrefix(a, "render:"))
	assert.Len(t, a, len("render:")+64)

	_, err = Key("render", make(chan int))
	assert.Error(t, err)
}
