package repository

import (
	"context"
	"sync"
	"time"

	"medicompare/internal/domain/entity"
	domainRepo "medicompare/internal/domain/repository"

	"github.com/google/uuid"
)

type memoryEntry struct {
	session   *entity.FlowSession
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type sessionMemoryRepository struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]memoryEntry
	expiry    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewSessionMemoryRepository keeps sessions in process memory.
// Every Save extends the session's lifetime by expiry; zero means sessions never expire.
// Expired sessions are swept on Save at most once per expiry period.
func NewSessionMemoryRepository(expiry time.Duration) domainRepo.SessionRepository {
	return &sessionMemoryRepository{
		sessions: make(map[uuid.UUID]memoryEntry),
		expiry:   expiry,
		now:      time.Now,
	}
}

func (r *sessionMemoryRepository) Save(ctx context.Context, session *entity.FlowSession) error {
	now := r.now()
	entry := memoryEntry{session: session.Clone()}
	if r.expiry > 0 {
		entry.expiresAt = now.Add(r.expiry)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(now)
	r.sessions[session.ID] = entry
	return nil
}

// sweepLocked drops expired sessions. Callers hold the write lock.
func (r *sessionMemoryRepository) sweepLocked(now time.Time) {
	if r.expiry <= 0 || now.Sub(r.lastSweep) < r.expiry {
		return
	}
	for id, entry := range r.sessions {
		if entry.expired(now) {
			delete(r.sessions, id)
		}
	}
	r.lastSweep = now
}

func (r *sessionMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FlowSession, error) {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !entry.expired(r.now()) {
		return entry.session.Clone(), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// a Save may have refreshed the session since the read lock was released
	current, ok := r.sessions[id]
	if ok && !current.expired(r.now()) {
		return current.session.Clone(), nil
	}
	delete(r.sessions, id)
	return nil, nil
}

func (r *sessionMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
