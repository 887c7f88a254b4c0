package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vitalsync/internal/wizard"
)

// =============================================================================
// Errors
// =============================================================================

// ErrSessionNotFound is returned when a wizard session is missing or expired
var ErrSessionNotFound = errors.New("symptom guide session not found")

// =============================================================================
// Constants
// =============================================================================

const (
	// Redis key prefix for wizard sessions
	RedisWizardKeyPrefix = "symptom:wizard:"

	defaultSessionTTL = 30 * time.Minute

	// Timeout for individual Redis operations
	redisSessionTimeout = 5 * time.Second

	// Interval for cleaning up stale mutexes
	mutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	mutexStaleThreshold = 10 * time.Minute
)

// =============================================================================
// Types
// =============================================================================

// WizardSessionService persists symptom wizard state in Redis.
//
// Updates to one session are serialized by a per-session mutex so that a
// read-modify-write never loses a concurrent change. Every write refreshes
// the session TTL.
type WizardSessionService struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger

	// Per-session mutex for concurrent safety
	sessionMu sync.Map // map[string]*mutexWithTimestamp

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// =============================================================================
// Constructor
// =============================================================================

// NewWizardSessionService starts a background goroutine for mutex cleanup.
// Call Stop() during graceful shutdown.
func NewWizardSessionService(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) *WizardSessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	svc := &WizardSessionService{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop()

	return svc
}

// =============================================================================
// Lifecycle Methods
// =============================================================================

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *WizardSessionService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("WizardSessionService stopped")
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Create stores a fresh state built by init under a new session id.
func (s *WizardSessionService) Create(ctx context.Context, init func(id string) wizard.State) (wizard.State, error) {
	state := init(uuid.NewString())
	if err := s.save(ctx, state); err != nil {
		return wizard.State{}, err
	}
	return state, nil
}

func (s *WizardSessionService) Load(ctx context.Context, id string) (wizard.State, error) {
	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return wizard.State{}, ErrSessionNotFound
	}
	if err != nil {
		s.log.Warnf("Failed to load wizard session %s: %+v", id, err)
		return wizard.State{}, fmt.Errorf("load wizard session %s: %w", id, err)
	}

	var state wizard.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return wizard.State{}, fmt.Errorf("decode wizard session %s: %w", id, err)
	}
	return state, nil
}

// Update loads the session, applies fn and stores the result. Nothing is
// written when fn fails.
func (s *WizardSessionService) Update(ctx context.Context, id string, fn func(state *wizard.State) error) (wizard.State, error) {
	mt := s.getSessionMutex(id)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	state, err := s.Load(ctx, id)
	if err != nil {
		return wizard.State{}, err
	}
	if err := fn(&state); err != nil {
		return state, err
	}
	if err := s.save(ctx, state); err != nil {
		return wizard.State{}, err
	}
	return state, nil
}

func (s *WizardSessionService) Delete(ctx context.Context, id string) error {
	mt := s.getSessionMutex(id)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	deleted, err := s.redisClient.Del(ctx, s.key(id)).Result()
	if err != nil {
		s.log.Warnf("Failed to delete wizard session %s: %+v", id, err)
		return fmt.Errorf("delete wizard session %s: %w", id, err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// =============================================================================
// Private Methods
// =============================================================================

func (s *WizardSessionService) key(id string) string {
	return RedisWizardKeyPrefix + id
}

func (s *WizardSessionService) save(ctx context.Context, state wizard.State) error {
	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	state.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode wizard session %s: %w", state.ID, err)
	}

	if err := s.redisClient.Set(ctx, s.key(state.ID), raw, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to save wizard session %s: %+v", state.ID, err)
		return fmt.Errorf("save wizard session %s: %w", state.ID, err)
	}

	s.log.Debugf("Saved wizard session %s at step %d, TTL=%v", state.ID, state.CurrentStepIndex, s.ttl)
	return nil
}

func (s *WizardSessionService) getSessionMutex(id string) *mutexWithTimestamp {
	mt, _ := s.sessionMu.LoadOrStore(id, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// cleanupMutexMapLoop runs in background to clean stale mutexes
func (s *WizardSessionService) cleanupMutexMapLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes(time.Now().Add(-mutexStaleThreshold))
		}
	}
}

// cleanupStaleMutexes removes mutexes unused since cutoff. The lastUsed check
// happens under the lock so a concurrent user cannot be dropped.
func (s *WizardSessionService) cleanupStaleMutexes(cutoff time.Time) int {
	cutoffTime := cutoff.Unix()
	var cleaned int

	s.sessionMu.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				s.sessionMu.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale mutexes", cleaned)
	}
	return cleaned
}
