package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/openglam/artroulette/internal/harvardart"
	"github.com/openglam/artroulette/internal/models"
	"github.com/openglam/artroulette/internal/selector"
)

// handleDiscover runs one fetch-and-select cycle. On any failure the
// session's current artwork is left untouched.
func (h *Handler) handleDiscover(w http.ResponseWriter, r *http.Request, session *models.DiscoverySession) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := h.catalog.SearchObjects(r.Context(), h.batchSize)
	if err != nil {
		if errors.Is(err, harvardart.ErrMissingAPIKey) {
			h.writeError(w, "Catalog API key is not configured", http.StatusServiceUnavailable)
			return
		}
		slog.Error("Catalog fetch failed", "session_id", session.ID, "err", err)
		h.writeError(w, "Couldn't fetch artworks from the catalog", http.StatusBadGateway)
		return
	}

	picked, err := selector.Select(records, session.Bans, h.src)
	if err != nil {
		h.writeError(w, "Nothing found that avoids your bans. Try removing one.", http.StatusNotFound)
		return
	}

	if h.noter != nil {
		note, err := h.noter.Note(r.Context(), picked)
		if err != nil {
			slog.Warn("Curatorial note generation failed", "session_id", session.ID, "err", err)
		} else {
			picked.Note = note
		}
	}

	updated := *session
	updated.Current = picked
	h.sessionStore.Set(session.ID, &updated)

	slog.Info("Artwork selected", "session_id", session.ID, "title", picked.Title, "batch", len(records))
	h.writeJSON(w, updated.View())
}
