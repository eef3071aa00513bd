package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/store"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newRedisStore(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s, err := store.NewRedisStore(client, "front-desk-1", testKey)
	require.NoError(t, err)
	return s, mr
}

func TestRedisStoreRejectsShortKey(t *testing.T) {
	_, err := store.NewRedisStore(nil, "seat", "too-short")
	assert.ErrorIs(t, err, hms_errors.ErrEncryptionKeyInvalid)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newRedisStore(t)

	rec, err := store.NewRecord("tok-xyz", testUser(), "receptionist", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, rec))

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-xyz", got.AuthToken)
	assert.Equal(t, "receptionist", got.UserRole)
}

func TestRedisStoreValueIsEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	rec, err := store.NewRecord("tok-secret", testUser(), "nurse", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, rec))

	raw, err := mr.Get("hms:session:front-desk-1")
	require.NoError(t, err)
	assert.NotContains(t, raw, "tok-secret")
}

func TestRedisStoreAbsentAndClear(t *testing.T) {
	ctx := context.Background()
	s, _ := newRedisStore(t)

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	rec, err := store.NewRecord("tok", testUser(), "nurse", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, rec))
	require.NoError(t, s.Clear(ctx))

	_, ok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
