package artwork

import (
	"strings"

	"github.com/openglam/artroulette/internal/harvardart"
)

// Normalize converts one raw catalog record into an Artwork. Any missing or
// whitespace-only field collapses to the Unknown sentinel; the image URL
// collapses to the empty string instead since it is rendered conditionally.
// The artist comes from the first contributor entry, if any.
func Normalize(rec harvardart.ObjectRecord) Artwork {
	artist := ""
	if len(rec.People) > 0 {
		artist = rec.People[0].Name
	}
	return Artwork{
		Title:    orUnknown(rec.Title),
		Artist:   orUnknown(artist),
		Culture:  orUnknown(rec.Culture),
		Century:  orUnknown(rec.Century),
		Date:     orUnknown(rec.Dated),
		Medium:   orUnknown(rec.Medium),
		ImageURL: strings.TrimSpace(rec.PrimaryImageURL),
	}
}
