package artwork

import (
	"testing"

	"github.com/openglam/artroulette/internal/harvardart"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		record   harvardart.ObjectRecord
		expected Artwork
	}{
		{
			name: "all fields present pass through verbatim",
			record: harvardart.ObjectRecord{
				Title:           "Vase",
				People:          []harvardart.Person{{Name: "Unknown"}},
				Culture:         "Greek",
				Century:         "5th century B.C.",
				Dated:           "450 BC",
				Medium:          "Clay",
				PrimaryImageURL: "http://x/1.jpg",
			},
			expected: Artwork{
				Title:    "Vase",
				Artist:   "Unknown",
				Culture:  "Greek",
				Century:  "5th century B.C.",
				Date:     "450 BC",
				Medium:   "Clay",
				ImageURL: "http://x/1.jpg",
			},
		},
		{
			name:   "missing fields collapse to sentinel",
			record: harvardart.ObjectRecord{},
			expected: Artwork{
				Title:    Unknown,
				Artist:   Unknown,
				Culture:  Unknown,
				Century:  Unknown,
				Date:     Unknown,
				Medium:   Unknown,
				ImageURL: "",
			},
		},
		{
			name: "whitespace-only fields collapse to sentinel",
			record: harvardart.ObjectRecord{
				Title:           "   ",
				People:          []harvardart.Person{{Name: "\t"}},
				Culture:         " ",
				Century:         "",
				Dated:           "  ",
				Medium:          "\n",
				PrimaryImageURL: "   ",
			},
			expected: Artwork{
				Title:    Unknown,
				Artist:   Unknown,
				Culture:  Unknown,
				Century:  Unknown,
				Date:     Unknown,
				Medium:   Unknown,
				ImageURL: "",
			},
		},
		{
			name: "artist comes from first contributor",
			record: harvardart.ObjectRecord{
				Title:  "Portrait",
				People: []harvardart.Person{{Name: "Rembrandt"}, {Name: "Workshop of Rembrandt"}},
			},
			expected: Artwork{
				Title:    "Portrait",
				Artist:   "Rembrandt",
				Culture:  Unknown,
				Century:  Unknown,
				Date:     Unknown,
				Medium:   Unknown,
				ImageURL: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.record)
			if result != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Attribute
		wantErr  bool
	}{
		{name: "artist", input: "artist", expected: AttrArtist},
		{name: "culture", input: "culture", expected: AttrCulture},
		{name: "century", input: "century", expected: AttrCentury},
		{name: "case insensitive", input: "Artist", expected: AttrArtist},
		{name: "trims whitespace", input: " century ", expected: AttrCentury},
		{name: "unknown attribute", input: "medium", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, err := ParseAttribute(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q, got %q", tt.input, attr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if attr != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, attr)
			}
		})
	}
}

func TestAttributeValue(t *testing.T) {
	a := Artwork{Artist: "Hokusai", Culture: "Japanese", Century: "19th century"}

	if got := a.AttributeValue(AttrArtist); got != "Hokusai" {
		t.Errorf("Expected Hokusai, got %s", got)
	}
	if got := a.AttributeValue(AttrCulture); got != "Japanese" {
		t.Errorf("Expected Japanese, got %s", got)
	}
	if got := a.AttributeValue(AttrCentury); got != "19th century" {
		t.Errorf("Expected 19th century, got %s", got)
	}
}
