package datasetcmd

import (
	"testing"

	"github.com/openglam/artroulette/internal/artwork"
)

func TestBuildBanSet(t *testing.T) {
	set, err := BuildBanSet(
		[]string{"Hokusai", "Vermeer"},
		[]string{"Greek"},
		nil,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if set.Len() != 3 {
		t.Errorf("Expected 3 bans, got %d", set.Len())
	}
	if !set.Contains(artwork.AttrArtist, "Hokusai") {
		t.Error("Expected Hokusai to be banned")
	}
	if !set.Contains(artwork.AttrCulture, "Greek") {
		t.Error("Expected Greek to be banned")
	}
	if set.Contains(artwork.AttrCentury, "Greek") {
		t.Error("Culture ban leaked into centuries")
	}
}

func TestBuildBanSetSkipsSentinel(t *testing.T) {
	set, err := BuildBanSet([]string{artwork.Unknown}, nil, []string{""})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Expected sentinel and empty values to be ignored, got %d bans", set.Len())
	}
}
