package storage

import (
	"testing"

	"github.com/openglam/artroulette/internal/artwork"
	"github.com/openglam/artroulette/internal/models"
)

func TestCreate(t *testing.T) {
	store := New()

	session := store.Create()
	if session.ID == "" {
		t.Fatal("Expected a session ID")
	}
	if session.Bans.Len() != 0 {
		t.Errorf("Expected no bans on a fresh session, got %d", session.Bans.Len())
	}
	if !session.Current.IsZero() {
		t.Errorf("Expected no artwork on a fresh session, got %+v", session.Current)
	}

	got, exists := store.Get(session.ID)
	if !exists {
		t.Fatal("Created session not found")
	}
	if got.ID != session.ID {
		t.Errorf("Expected session %s, got %s", session.ID, got.ID)
	}
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	store := New()

	a := store.Create()
	b := store.Create()
	if a.ID == b.ID {
		t.Errorf("Expected unique session IDs, both were %s", a.ID)
	}
}

func TestGetMissing(t *testing.T) {
	store := New()

	if _, exists := store.Get("nope"); exists {
		t.Error("Expected missing session to not exist")
	}
}

func TestSetReplacesWholesale(t *testing.T) {
	store := New()
	session := store.Create()

	updated := *session
	updated.Current = artwork.Artwork{Title: "Vase"}
	store.Set(session.ID, &updated)

	got, _ := store.Get(session.ID)
	if got.Current.Title != "Vase" {
		t.Errorf("Expected replaced session, got %+v", got.Current)
	}
}

func TestDelete(t *testing.T) {
	store := New()
	session := store.Create()

	store.Delete(session.ID)
	if _, exists := store.Get(session.ID); exists {
		t.Error("Expected session to be gone after delete")
	}

	// Deleting again is a no-op
	store.Delete(session.ID)
}

func TestSessionView(t *testing.T) {
	store := New()
	session := store.Create()

	view := session.View()
	if view.Current != nil {
		t.Error("Expected no current artwork in fresh view")
	}
	if len(view.Bans) != 0 {
		t.Errorf("Expected no bans in fresh view, got %v", view.Bans)
	}

	updated := models.DiscoverySession{
		ID:        session.ID,
		Bans:      session.Bans,
		Current:   artwork.Artwork{Title: "Vase"},
		CreatedAt: session.CreatedAt,
	}
	view = updated.View()
	if view.Current == nil || view.Current.Title != "Vase" {
		t.Errorf("Expected current artwork in view, got %+v", view.Current)
	}
}
