package widget

import (
	"sync"
	"time"

	"go-weather/internal/domain/usecase/weather"

	"github.com/google/uuid"
)

// Registry keeps one Session per visitor
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	config   SessionConfig
	idleTTL  time.Duration
	useCase  weather.UseCase
	now      func() time.Time
}

func NewRegistry(config SessionConfig, idleTTL time.Duration, useCase weather.UseCase) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		config:   config,
		idleTTL:  idleTTL,
		useCase:  useCase,
		now:      time.Now,
	}
}

// GetOrCreate returns the session with id, creating one under a fresh id when id is unknown.
// created reports whether a new session was made.
func (r *Registry) GetOrCreate(id string, clientIP string) (session *Session, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[id]; ok {
		return session, false
	}

	session = NewSession(uuid.New().String(), clientIP, r.config, r.useCase)
	session.now = r.now
	session.lastSeen = r.now()
	r.sessions[session.ID()] = session
	return session, true
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	return session, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes and forgets sessions idle for longer than the idle TTL and returns how many.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline := r.now().Add(-r.idleTTL)
	evicted := 0
	for id, session := range r.sessions {
		if session.IdleSince().Before(deadline) {
			session.Close()
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// CloseAll closes every session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, session := range r.sessions {
		session.Close()
		delete(r.sessions, id)
	}
}
