package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps keys in memory and mimics SETNX and the release script.
type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, held := f.values[key]; held {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	if f.values[keys[0]] == args[0].(string) {
		delete(f.values, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestRedisLocker_IsExclusiveUntilReleased(t *testing.T) {
	// Arrange
	ctx := context.Background()
	client := newFakeRedis()
	locker := NewRedisLocker(client, "rent:jobs:")

	// Act
	token, ok, err := locker.TryLock(ctx, "accrual", time.Minute)
	require.NoError(t, err)
	_, secondOK, err := locker.TryLock(ctx, "accrual", time.Minute)
	require.NoError(t, err)

	// Assert
	assert.True(t, ok)
	assert.False(t, secondOK)
	assert.Equal(t, time.Minute, client.ttls["rent:jobs:accrual"])

	require.NoError(t, locker.Unlock(ctx, "accrual", token))
	_, ok, err = locker.TryLock(ctx, "accrual", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_UnlockWithStaleTokenKeepsLock(t *testing.T) {
	// Arrange
	ctx := context.Background()
	client := newFakeRedis()
	locker := NewRedisLocker(client, "rent:jobs:")
	_, ok, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// Act
	err = locker.Unlock(ctx, "sweep", "someone-else")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, client.values, "rent:jobs:sweep")
}

func TestRedisLocker_PropagatesErrors(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")

	_, ok, err := NewRedisLocker(client, "").TryLock(context.Background(), "sweep", time.Minute)

	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
}
