package flow

import (
	"context"
	"errors"
	"sync"
	"time"

	"listing-wizard/internal/application/drafts"
	"listing-wizard/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrSessionNotFound = errors.New("Wizard session not found")

// DefaultSessionTTL is how long an untouched session is kept.
const DefaultSessionTTL = 2 * time.Hour

// Welcome is the entry screen.
type Welcome struct {
	Tips     []string `json:"tips"`
	HasDraft bool     `json:"hasDraft"`
}

// Registry holds the live sessions in memory. Sessions are never persisted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      Config
	ttl      time.Duration
	now      func() time.Time
}

func NewRegistry(cfg Config, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{
		sessions: make(map[string]*Session),
		cfg:      cfg.withDefaults(),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Welcome builds the entry screen for a draft owner.
func (r *Registry) Welcome(ctx context.Context, owner string) (Welcome, error) {
	ok, err := r.cfg.Drafts.Exists(ctx, ownerOrDefault(owner))
	if err != nil {
		return Welcome{}, err
	}
	return Welcome{Tips: domain.OnboardingTips, HasDraft: ok}, nil
}

// Create registers a session on the entry screen.
func (r *Registry) Create(owner string) *Session {
	now := r.now()
	s := newSession(uuid.NewString(), ownerOrDefault(owner), r.cfg, now)
	r.mu.Lock()
	r.evictLocked(now)
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns a live session and marks it used.
func (r *Registry) Get(id string) (*Session, error) {
	now := r.now()
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if now.Sub(s.idleSince()) > r.ttl {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	s.touch(now)
	return s, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) evictLocked(now time.Time) {
	for id, s := range r.sessions {
		if now.Sub(s.idleSince()) > r.ttl {
			delete(r.sessions, id)
			log.Debug().Str("session_id", id).Msg("Wizard session expired")
		}
	}
}

func ownerOrDefault(owner string) string {
	if owner == "" {
		return drafts.DefaultOwner
	}
	return owner
}
