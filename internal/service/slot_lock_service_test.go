package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSlotLockService_LocalOnlySerializes(t *testing.T) {
	svc := NewSlotLockService(nil, quietLogger(), time.Second)
	defer svc.Stop()

	provider := uuid.New()
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := svc.Lock(context.Background(), provider, day)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()
			time.Sleep(2 * time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestSlotLockService_DifferentDaysDoNotBlock(t *testing.T) {
	svc := NewSlotLockService(nil, quietLogger(), time.Second)
	defer svc.Stop()

	provider := uuid.New()
	unlock, err := svc.Lock(context.Background(), provider, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	unlock2, err := svc.Lock(ctx, provider, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	unlock2()
}

func TestSlotLockService_TimesOutWhenHeld(t *testing.T) {
	svc := NewSlotLockService(nil, quietLogger(), time.Second)
	defer svc.Stop()

	provider := uuid.New()
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	unlock, err := svc.Lock(context.Background(), provider, day)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = svc.Lock(ctx, provider, day)
	assert.ErrorIs(t, err, ErrSlotBusy)
}

func TestSlotLockService_RedisLockSetAndReleased(t *testing.T) {
	mr, client := newRedis(t)
	svc := NewSlotLockService(client, quietLogger(), 5*time.Second)
	defer svc.Stop()

	provider := uuid.New()
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	key := RedisSlotLockKeyPrefix + SlotKey(provider, day)

	unlock, err := svc.Lock(context.Background(), provider, day)
	require.NoError(t, err)
	assert.True(t, mr.Exists(key))
	assert.Greater(t, mr.TTL(key), time.Duration(0))

	unlock()
	assert.False(t, mr.Exists(key))
}

func TestSlotLockService_RedisHeldByOtherInstance(t *testing.T) {
	mr, client := newRedis(t)
	svc := NewSlotLockService(client, quietLogger(), 5*time.Second)
	defer svc.Stop()

	provider := uuid.New()
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	key := RedisSlotLockKeyPrefix + SlotKey(provider, day)
	require.NoError(t, mr.Set(key, "someone-else"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()
	_, err := svc.Lock(ctx, provider, day)
	assert.ErrorIs(t, err, ErrSlotBusy)

	// the foreign lock must survive our failed attempt
	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestSlotLockService_ReleaseKeepsForeignToken(t *testing.T) {
	mr, client := newRedis(t)
	svc := NewSlotLockService(client, quietLogger(), 5*time.Second)
	defer svc.Stop()

	provider := uuid.New()
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	key := RedisSlotLockKeyPrefix + SlotKey(provider, day)

	unlock, err := svc.Lock(context.Background(), provider, day)
	require.NoError(t, err)

	// simulate expiry and takeover by another instance
	require.NoError(t, mr.Set(key, "other-token"))
	unlock()

	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "other-token", got)
}

func TestSlotLockService_CleanupStale(t *testing.T) {
	svc := NewSlotLockService(nil, quietLogger(), time.Second)
	defer svc.Stop()

	provider := uuid.New()
	unlock, err := svc.Lock(context.Background(), provider, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	held, err := svc.Lock(context.Background(), provider, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	defer held()
	unlock()

	// only the released one can be removed
	assert.Equal(t, 1, svc.cleanupStale(time.Now().Add(time.Hour)))
}

func TestSlotLockService_LockMovesOffRemovedSemaphore(t *testing.T) {
	svc := NewSlotLockService(nil, quietLogger(), time.Second)
	defer svc.Stop()
	svc.acquireWait = 500 * time.Millisecond

	provider := uuid.New()
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	key := SlotKey(provider, day)

	// Hold the current semaphore so the next Lock blocks on it.
	stale := svc.getSemaphore(key)
	stale.ch <- struct{}{}

	type result struct {
		unlock func()
		err    error
	}
	done := make(chan result, 1)
	go func() {
		unlock, err := svc.Lock(context.Background(), provider, day)
		done <- result{unlock, err}
	}()
	time.Sleep(50 * time.Millisecond)

	// Cleanup removes the semaphore while it is held, then lets go of it.
	require.True(t, svc.slots.CompareAndDelete(key, stale))
	<-stale.ch

	res := <-done
	require.NoError(t, res.err)
	defer res.unlock()

	current, ok := svc.slots.Load(key)
	require.True(t, ok)
	assert.NotSame(t, stale, current)
	assert.Len(t, stale.ch, 0, "removed semaphore is not kept by the holder")

	_, err := svc.Lock(context.Background(), provider, day)
	assert.ErrorIs(t, err, ErrSlotBusy)
}

func TestSlotLockService_StopIdempotent(t *testing.T) {
	svc := NewSlotLockService(nil, quietLogger(), time.Second)
	svc.Stop()
	svc.Stop()
}
