package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ChallengeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewChallengeStore(client), mr
}

func TestChallengeStoreConsume(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "admin@clinic.test", "ABCD1234", time.Minute))
	assert.NoError(t, store.Consume(ctx, "admin@clinic.test", "ABCD1234"))

	// single use: the entry is gone after a successful consume
	err := store.Consume(ctx, "admin@clinic.test", "ABCD1234")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestChallengeStoreWrongCode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "admin@clinic.test", "ABCD1234", time.Minute))

	err := store.Consume(ctx, "admin@clinic.test", "WRONG000")
	assert.ErrorIs(t, err, ErrChallengeNotFound)

	// a wrong guess does not invalidate the real code
	assert.NoError(t, store.Consume(ctx, "admin@clinic.test", "ABCD1234"))
}

func TestChallengeStoreOverwrite(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "admin@clinic.test", "FIRST111", time.Minute))
	require.NoError(t, store.Put(ctx, "admin@clinic.test", "SECOND22", time.Minute))

	assert.ErrorIs(t, store.Consume(ctx, "admin@clinic.test", "FIRST111"), ErrChallengeNotFound)
	assert.NoError(t, store.Consume(ctx, "admin@clinic.test", "SECOND22"))
}

func TestChallengeStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "admin@clinic.test", "ABCD1234", 5*time.Minute))
	mr.FastForward(5*time.Minute + time.Second)

	err := store.Consume(ctx, "admin@clinic.test", "ABCD1234")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestChallengeStoreKeyNormalization(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "Admin@Clinic.Test ", "ABCD1234", time.Minute))
	assert.NoError(t, store.Consume(ctx, "admin@clinic.test", "ABCD1234"))
}

func TestChallengeStoreBackendDown(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	mr.Close()

	err := store.Put(ctx, "admin@clinic.test", "ABCD1234", time.Minute)
	assert.ErrorIs(t, err, ErrChallengeBackend)

	err = store.Consume(ctx, "admin@clinic.test", "ABCD1234")
	assert.ErrorIs(t, err, ErrChallengeBackend)
}
