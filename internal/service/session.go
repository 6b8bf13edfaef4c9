package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"tams-dashboard/internal/dto"
	"tams-dashboard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Guard admits at most one holder at a time. A failed TryBegin does not wait.
type Guard struct {
	busy atomic.Bool
}

func (g *Guard) TryBegin() bool { return g.busy.CompareAndSwap(false, true) }
func (g *Guard) End()           { g.busy.Store(false) }
func (g *Guard) Busy() bool     { return g.busy.Load() }

// Session is the per-user dashboard state: the last submitted alert and the
// result it produced.
type Session struct {
	ID        string
	CreatedAt time.Time

	Analysis  Guard
	SmokeTest Guard

	mu            sync.RWMutex
	lastActive    time.Time
	request       *models.AlertRequest
	view          *dto.AnalysisView
	lastErrorKind string
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

func (s *Session) recordResult(req *models.AlertRequest, view *dto.AnalysisView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.request = req
	s.view = view
	s.lastErrorKind = ""
}

// recordFailure keeps the previous result in place.
func (s *Session) recordFailure(kind string) {
	s.mu.Lock()
	s.lastErrorKind = kind
	s.mu.Unlock()
}

func (s *Session) View() (*dto.AnalysisView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view, s.view != nil
}

func (s *Session) LastRequest() *models.AlertRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.request
}

func (s *Session) LastErrorKind() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErrorKind
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
	onChange func(n int)
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// OnChange registers a callback invoked with the session count after every
// insert or sweep.
func (s *SessionStore) OnChange(fn func(n int)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *SessionStore) Create() *Session {
	return s.GetOrCreate(uuid.NewString())
}

// GetOrCreate returns the session for id, creating it when a still-valid
// token outlives the in-memory state (for example after a restart).
func (s *SessionStore) GetOrCreate(id string) *Session {
	s.mu.Lock()
	now := s.now()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id, CreatedAt: now}
		s.sessions[id] = sess
	}
	n, cb := len(s.sessions), s.onChange
	s.mu.Unlock()

	sess.touch(now)
	if !ok && cb != nil {
		cb(n)
	}
	return sess
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	now := s.now()
	s.mu.Unlock()

	if ok {
		sess.touch(now)
	}
	return sess, ok
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than ttl. Sessions with a request in
// flight are kept.
func (s *SessionStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.Analysis.Busy() || sess.SmokeTest.Busy() {
			continue
		}
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	n, cb := len(s.sessions), s.onChange
	s.mu.Unlock()

	if removed > 0 && cb != nil {
		cb(n)
	}
	return removed
}

type SessionCleanup struct {
	store    *SessionStore
	interval time.Duration
	ttl      time.Duration
	logger   *zap.Logger
}

func NewSessionCleanup(store *SessionStore, interval, ttl time.Duration, logger *zap.Logger) *SessionCleanup {
	return &SessionCleanup{
		store:    store,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

// Start blocks until ctx is cancelled.
func (c *SessionCleanup) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info("Session cleanup started", zap.Duration("interval", c.interval), zap.Duration("idle_ttl", c.ttl))

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Session cleanup stopped")
			return
		case <-ticker.C:
			if removed := c.store.Sweep(c.ttl); removed > 0 {
				c.logger.Info("Expired idle sessions", zap.Int("removed", removed), zap.Int("remaining", c.store.Len()))
			}
		}
	}
}
