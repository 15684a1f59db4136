package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openglam/artroulette/internal/bans"
	"github.com/openglam/artroulette/internal/models"
)

// SessionStore holds discovery sessions in memory for the lifetime of the
// process. Sessions are never persisted.
type SessionStore struct {
	sessions map[string]*models.DiscoverySession
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.DiscoverySession),
	}
}

// Create registers a fresh session with no bans and no artwork.
func (s *SessionStore) Create() *models.DiscoverySession {
	session := &models.DiscoverySession{
		ID:        uuid.NewString(),
		Bans:      bans.New(),
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session
}

func (s *SessionStore) Get(sessionID string) (*models.DiscoverySession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *models.DiscoverySession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
