package artwork

import (
	"errors"
	"fmt"
	"strings"
)

// Attribute names one of the banable fields of an artwork.
type Attribute string

const (
	AttrArtist  Attribute = "artist"
	AttrCulture Attribute = "culture"
	AttrCentury Attribute = "century"
)

// Attributes lists every banable attribute.
var Attributes = []Attribute{AttrArtist, AttrCulture, AttrCentury}

// ErrInvalidAttribute is returned when a caller names an attribute that is
// not one of artist, culture, or century.
var ErrInvalidAttribute = errors.New("invalid attribute")

// ParseAttribute converts a user-supplied attribute name to an Attribute.
func ParseAttribute(s string) (Attribute, error) {
	switch Attribute(strings.ToLower(strings.TrimSpace(s))) {
	case AttrArtist:
		return AttrArtist, nil
	case AttrCulture:
		return AttrCulture, nil
	case AttrCentury:
		return AttrCentury, nil
	}
	return "", fmt.Errorf("%w: %q (expected artist, culture, or century)", ErrInvalidAttribute, s)
}
