package artwork

import "strings"

// Unknown is the placeholder shown for any field the catalog left blank.
// It is never a banable value.
const Unknown = "N/A"

// Artwork is the normalized view of one catalog object record.
type Artwork struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Culture  string `json:"culture"`
	Century  string `json:"century"`
	Date     string `json:"date"`
	Medium   string `json:"medium"`
	ImageURL string `json:"image_url"`
	// Note is an optional curatorial blurb generated after selection.
	Note string `json:"note,omitempty"`
}

// IsZero reports whether a has never been populated by a discover cycle.
func (a Artwork) IsZero() bool {
	return a == Artwork{}
}

// AttributeValue returns the normalized value for one banable attribute.
func (a Artwork) AttributeValue(attr Attribute) string {
	switch attr {
	case AttrArtist:
		return a.Artist
	case AttrCulture:
		return a.Culture
	case AttrCentury:
		return a.Century
	}
	return ""
}

// orUnknown collapses missing or whitespace-only values to the Unknown sentinel.
func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}
