package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotBusy is returned when the provider's day stays locked past the acquire timeout
var ErrSlotBusy = errors.New("another booking for this provider and date is in progress")

// releaseLockScript deletes the lock only if it still holds our token, so an
// expired lock that was taken over by another instance is never released by us.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	RedisSlotLockKeyPrefix = "slot:lock:"

	lockRetryInterval    = 25 * time.Millisecond
	defaultAcquireWait   = 5 * time.Second
	mutexCleanupInterval = 10 * time.Minute
	mutexStaleThreshold  = 10 * time.Minute
)

// SlotLocker serializes writes that touch one provider's appointments on one date.
type SlotLocker interface {
	Lock(ctx context.Context, providerID uuid.UUID, date time.Time) (func(), error)
}

// SlotLockService guards a provider/date pair in two layers:
// an in-process semaphore for requests served by this instance, then a Redis
// SET NX PX lock shared by every instance. Redis is optional.
//
// Lock Ordering (to prevent deadlocks):
// 1. Acquire local semaphore FIRST
// 2. Then the Redis lock
type SlotLockService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
	acquireWait time.Duration

	slots sync.Map // map[string]*slotSemaphore

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

type slotSemaphore struct {
	ch       chan struct{}
	lastUsed atomic.Int64 // Unix timestamp
}

// NewSlotLockService starts the background cleanup of idle semaphores.
// redisClient may be nil. Call Stop() during graceful shutdown.
func NewSlotLockService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *SlotLockService {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	svc := &SlotLockService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
		acquireWait: defaultAcquireWait,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupLoop()

	return svc
}

// Stop is safe to call multiple times.
func (s *SlotLockService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SlotLockService stopped")
	}
}

// SlotKey identifies a provider's calendar day.
func SlotKey(providerID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s:%s", providerID, date.Format("2006-01-02"))
}

// Lock blocks until the provider/date is free, the context ends or the
// acquire timeout passes. The returned func releases both layers.
func (s *SlotLockService) Lock(ctx context.Context, providerID uuid.UUID, date time.Time) (func(), error) {
	key := SlotKey(providerID, date)

	ctx, cancel := context.WithTimeout(ctx, s.acquireWait)
	defer cancel()

	sem, err := s.acquireLocal(ctx, key)
	if err != nil {
		return nil, err
	}
	releaseLocal := func() {
		sem.lastUsed.Store(time.Now().Unix())
		<-sem.ch
	}

	if s.redisClient == nil {
		return releaseLocal, nil
	}

	token := uuid.NewString()
	redisKey := RedisSlotLockKeyPrefix + key
	if err := s.acquireRedis(ctx, redisKey, token); err != nil {
		releaseLocal()
		return nil, err
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseLockScript.Run(releaseCtx, s.redisClient, []string{redisKey}, token).Err(); err != nil {
			// the key expires on its own after ttl
			s.log.Warnf("Failed to release slot lock %s: %+v", redisKey, err)
		}
		releaseLocal()
	}, nil
}

// acquireLocal takes the key's semaphore. If cleanup dropped the semaphore
// from the map between lookup and acquire, it is released and the lookup is
// retried, so every holder of a key shares the one stored semaphore.
func (s *SlotLockService) acquireLocal(ctx context.Context, key string) (*slotSemaphore, error) {
	for {
		sem := s.getSemaphore(key)
		select {
		case sem.ch <- struct{}{}:
		case <-ctx.Done():
			return nil, ErrSlotBusy
		}

		if current, ok := s.slots.Load(key); ok && current == sem {
			return sem, nil
		}
		<-sem.ch
	}
}

func (s *SlotLockService) acquireRedis(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return ErrSlotBusy
			}
			s.log.Warnf("Failed to acquire slot lock %s: %+v", key, err)
			return fmt.Errorf("acquire slot lock: %w", err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ErrSlotBusy
		case <-ticker.C:
		}
	}
}

func (s *SlotLockService) getSemaphore(key string) *slotSemaphore {
	v, _ := s.slots.LoadOrStore(key, &slotSemaphore{ch: make(chan struct{}, 1)})
	sem := v.(*slotSemaphore)
	sem.lastUsed.Store(time.Now().Unix())
	return sem
}

func (s *SlotLockService) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanupStale(time.Now().Add(-mutexStaleThreshold))
		}
	}
}

// cleanupStale drops semaphores idle since before cutoff. A semaphore is only
// removed while we hold it. A caller that looked it up before the removal
// notices in acquireLocal and moves to the replacement.
func (s *SlotLockService) cleanupStale(cutoff time.Time) int {
	cutoffUnix := cutoff.Unix()
	cleaned := 0

	s.slots.Range(func(key, value any) bool {
		sem := value.(*slotSemaphore)
		select {
		case sem.ch <- struct{}{}:
			if sem.lastUsed.Load() < cutoffUnix {
				if s.slots.CompareAndDelete(key, sem) {
					cleaned++
				}
			}
			<-sem.ch
		default:
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d idle slot locks", cleaned)
	}
	return cleaned
}
