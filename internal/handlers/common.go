package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/openglam/artroulette/internal/curator"
	"github.com/openglam/artroulette/internal/harvardart"
	"github.com/openglam/artroulette/internal/models"
	"github.com/openglam/artroulette/internal/selector"
	"github.com/openglam/artroulette/internal/storage"
)

// Fetcher fetches one batch of candidate records. *harvardart.Client is the
// production implementation; tests supply a fixed batch.
type Fetcher interface {
	SearchObjects(ctx context.Context, size int) ([]harvardart.ObjectRecord, error)
}

type Handler struct {
	sessionStore *storage.SessionStore
	catalog      Fetcher
	noter        curator.Noter
	src          selector.Source
	batchSize    int
}

// Option customizes a Handler; used by tests to pin the randomness source.
type Option func(*Handler)

func WithSource(src selector.Source) Option {
	return func(h *Handler) { h.src = src }
}

func WithBatchSize(size int) Option {
	return func(h *Handler) { h.batchSize = size }
}

func WithNoter(n curator.Noter) Option {
	return func(h *Handler) { h.noter = n }
}

func New(catalog Fetcher, opts ...Option) *Handler {
	h := &Handler{
		sessionStore: storage.New(),
		catalog:      catalog,
		noter:        curator.FromEnv(),
		src:          newLockedSource(time.Now().UnixNano()),
		batchSize:    harvardart.DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// lockedSource makes a math/rand source safe for concurrent handlers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedSource(seed int64) *lockedSource {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("Unable to encode error response", "err", err)
	}
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*models.DiscoverySession, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
