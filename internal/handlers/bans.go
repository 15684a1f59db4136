package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openglam/artroulette/internal/artwork"
	"github.com/openglam/artroulette/internal/bans"
	"github.com/openglam/artroulette/internal/models"
)

type banRequest struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

func (h *Handler) handleBans(w http.ResponseWriter, r *http.Request, session *models.DiscoverySession) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, session.View().Bans)
	case "POST":
		h.mutateBans(w, r, session, bans.BanSet.Add)
	case "DELETE":
		h.mutateBans(w, r, session, bans.BanSet.Remove)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) mutateBans(w http.ResponseWriter, r *http.Request, session *models.DiscoverySession,
	op func(bans.BanSet, artwork.Attribute, string) (bans.BanSet, error)) {

	var req banRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	attr, err := artwork.ParseAttribute(req.Attribute)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	next, err := op(session.Bans, attr, req.Value)
	if err != nil {
		if errors.Is(err, artwork.ErrInvalidAttribute) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, "Failed to update bans", http.StatusInternalServerError)
		return
	}

	updated := *session
	updated.Bans = next
	h.sessionStore.Set(session.ID, &updated)
	h.writeJSON(w, updated.View())
}

func (h *Handler) handleClearBans(w http.ResponseWriter, r *http.Request, session *models.DiscoverySession) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	updated := *session
	updated.Bans = session.Bans.Clear()
	h.sessionStore.Set(session.ID, &updated)
	h.writeJSON(w, updated.View())
}
