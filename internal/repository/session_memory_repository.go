package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const sessionSweepInterval = 5 * time.Minute

type memorySession struct {
	identity  entity.Identity
	expiresAt time.Time
}

// MemorySessionRepository keeps sessions in process memory. Expired entries are
// hidden by Find right away and removed by a background sweeper.
// Call Stop() during graceful shutdown.
type MemorySessionRepository struct {
	log      *logrus.Logger
	sessions sync.Map // map[string]memorySession
	now      func() time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

var _ domainRepo.SessionRepository = (*MemorySessionRepository)(nil)

func NewMemorySessionRepository(log *logrus.Logger) *MemorySessionRepository {
	repo := &MemorySessionRepository{
		log:      log,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	repo.wg.Add(1)
	go repo.sweepLoop(sessionSweepInterval)

	return repo
}

// Stop halts the sweeper. Safe to call multiple times.
func (r *MemorySessionRepository) Stop() {
	if r.stopped.CompareAndSwap(false, true) {
		close(r.stopChan)
		r.wg.Wait()
		r.log.Info("Memory session store stopped")
	}
}

func (r *MemorySessionRepository) Save(ctx context.Context, sessionID string, identity *entity.Identity, ttl time.Duration) error {
	r.sessions.Store(sessionID, memorySession{
		identity:  *identity,
		expiresAt: r.now().Add(ttl),
	})
	return nil
}

func (r *MemorySessionRepository) Find(ctx context.Context, sessionID string) (*entity.Identity, error) {
	value, ok := r.sessions.Load(sessionID)
	if !ok {
		return nil, nil
	}

	session := value.(memorySession)
	if !r.now().Before(session.expiresAt) {
		r.sessions.Delete(sessionID)
		return nil, nil
	}

	identity := session.identity
	return &identity, nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.sessions.Delete(sessionID)
	return nil
}

func (r *MemorySessionRepository) sweepLoop(interval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			r.log.Debug("Session sweeper stopping")
			return
		case <-ticker.C:
			r.sweepExpired()
		}
	}
}

func (r *MemorySessionRepository) sweepExpired() {
	now := r.now()
	var removed int

	r.sessions.Range(func(key, value any) bool {
		session, ok := value.(memorySession)
		if !ok || !now.Before(session.expiresAt) {
			r.sessions.Delete(key)
			removed++
		}
		return true
	})

	if removed > 0 {
		r.log.Debugf("Removed %d expired sessions", removed)
	}
}
