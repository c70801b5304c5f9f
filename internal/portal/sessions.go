package portal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sweepInterval is how often the registry scans for idle sessions.
const sweepInterval = time.Minute

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Sessions maps anonymous browser sessions to their stage controllers. It is
// purely in-memory: restarting the process forgets every visitor, which is
// fine because nothing the portal holds is worth persisting.
type Sessions struct {
	maxIdle time.Duration
	newCtrl func() *Controller
	log     *zap.Logger

	// onCount, when set, receives the active-session count after every
	// change (used for the Prometheus gauge).
	onCount func(int)

	mu   sync.Mutex
	byID map[string]*session
}

func NewSessions(maxIdle time.Duration, newCtrl func() *Controller, log *zap.Logger) *Sessions {
	return &Sessions{
		maxIdle: maxIdle,
		newCtrl: newCtrl,
		log:     log,
		byID:    make(map[string]*session),
	}
}

// OnCount registers a callback for the active-session count.
func (s *Sessions) OnCount(fn func(int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCount = fn
	fn(len(s.byID))
}

// Get returns the controller for id and refreshes its idle clock.
func (s *Sessions) Get(id string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess.ctrl, true
}

// Create registers a fresh Collecting controller under a new session ID.
func (s *Sessions) Create() (string, *Controller) {
	id := uuid.NewString()
	ctrl := s.newCtrl()

	s.mu.Lock()
	s.byID[id] = &session{ctrl: ctrl, lastSeen: time.Now()}
	n := len(s.byID)
	fn := s.onCount
	s.mu.Unlock()

	if fn != nil {
		fn(n)
	}
	return id, ctrl
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Sweep evicts sessions idle past maxIdle every sweepInterval until ctx ends.
// Run it in its own goroutine.
func (s *Sessions) Sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted, left := s.evictIdle(time.Now()); evicted > 0 {
				s.log.Info("evicted idle sessions",
					zap.Int("evicted", evicted),
					zap.Int("active", left),
					zap.Duration("max_idle", s.maxIdle),
				)
			}
		}
	}
}

func (s *Sessions) evictIdle(now time.Time) (evicted, left int) {
	s.mu.Lock()
	for id, sess := range s.byID {
		if now.Sub(sess.lastSeen) > s.maxIdle {
			delete(s.byID, id)
			evicted++
		}
	}
	left = len(s.byID)
	fn := s.onCount
	s.mu.Unlock()

	if evicted > 0 && fn != nil {
		fn(left)
	}
	return evicted, left
}
