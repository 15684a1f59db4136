// Package curator generates short curatorial notes for selected artworks.
// Notes are optional color; a curator failure never fails a discover.
package curator

import (
	"context"

	"github.com/openglam/artroulette/internal/artwork"
)

// Noter produces a one-paragraph note about an artwork.
type Noter interface {
	Note(ctx context.Context, a artwork.Artwork) (string, error)
}
