package handlers

import (
	"net/http"
	"strings"
)

func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		session := h.sessionStore.Create()
		h.writeJSON(w, session.View())
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleSessionDetail routes /api/sessions/{id}[/discover|/bans|/bans/clear].
func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	sessionID, action, _ := strings.Cut(rest, "/")

	session, ok := h.getSessionOrError(w, sessionID)
	if !ok {
		return
	}

	switch action {
	case "":
		if r.Method != "GET" {
			h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.writeJSON(w, session.View())
	case "discover":
		h.handleDiscover(w, r, session)
	case "bans":
		h.handleBans(w, r, session)
	case "bans/clear":
		h.handleClearBans(w, r, session)
	default:
		h.writeError(w, "Not found", http.StatusNotFound)
	}
}
