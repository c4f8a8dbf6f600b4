package redis_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"borrowbank.backend/pkg/redis"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f"

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNewSessionStoreRejectsBadKeys(t *testing.T) {
	_, err := redis.NewSessionStore("not-hex")
	assert.Error(t, err)

	_, err = redis.NewSessionStore("abcd")
	assert.Error(t, err)

	_, err = redis.NewSessionStore(testKeyHex)
	assert.NoError(t, err)
}

func TestSessionRoundTrip(t *testing.T) {
	mr := setupRedis(t)

	store, err := redis.NewSessionStore(testKeyHex)
	require.NoError(t, err)

	ctx := context.Background()
	data := &redis.SessionData{AccessToken: "access", RefreshToken: "refresh"}
	require.NoError(t, store.CreateSession(ctx, "sid-1", data, time.Hour))

	// The stored value must not contain the tokens in clear.
	raw, err := mr.Get("session:sid-1")
	require.NoError(t, err)
	assert.False(t, strings.Contains(raw, "access"))

	got, err := store.GetSession(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.DeleteSession(ctx, "sid-1"))
	_, err = store.GetSession(ctx, "sid-1")
	assert.Error(t, err)
}

func TestGetSessionWrongKey(t *testing.T) {
	setupRedis(t)

	store, err := redis.NewSessionStore(testKeyHex)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.CreateSession(ctx, "sid-2", &redis.SessionData{AccessToken: "a"}, time.Hour))

	other, err := redis.NewSessionStore(strings.Repeat("ff", 32))
	require.NoError(t, err)
	_, err = other.GetSession(ctx, "sid-2")
	assert.Error(t, err)
}
