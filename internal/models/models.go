package models

import (
	"time"

	"github.com/openglam/artroulette/internal/artwork"
	"github.com/openglam/artroulette/internal/bans"
)

// DiscoverySession is one browser session's state: the bans accumulated so
// far and the artwork currently on display. Both are value objects replaced
// wholesale; a session is never partially updated.
type DiscoverySession struct {
	ID        string
	Bans      bans.BanSet
	Current   artwork.Artwork
	CreatedAt time.Time
}

// SessionView is the JSON shape handlers return for a session.
type SessionView struct {
	ID        string              `json:"id"`
	Bans      map[string][]string `json:"bans"`
	Current   *artwork.Artwork    `json:"current,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// View renders the session for JSON responses. The current artwork is
// omitted until the first successful discover.
func (s *DiscoverySession) View() SessionView {
	v := SessionView{
		ID:        s.ID,
		Bans:      make(map[string][]string, len(artwork.Attributes)),
		CreatedAt: s.CreatedAt,
	}
	for _, attr := range artwork.Attributes {
		if values := s.Bans.Values(attr); values != nil {
			v.Bans[string(attr)] = values
		}
	}
	if !s.Current.IsZero() {
		current := s.Current
		v.Current = &current
	}
	return v
}
