// Package selector implements the ban-aware random pick over one fetched
// batch of catalog records. It performs no I/O; the caller fetches the batch
// and supplies the randomness source, so selection is a pure function.
package selector

import (
	"errors"

	"github.com/openglam/artroulette/internal/artwork"
	"github.com/openglam/artroulette/internal/bans"
	"github.com/openglam/artroulette/internal/harvardart"
)

// ErrNoEligibleArtworks means every record in the batch was filtered out by
// the current bans, or the batch was empty to begin with. It signals "your
// filters are too strict", not a transport failure.
var ErrNoEligibleArtworks = errors.New("no eligible artworks after applying bans")

// Source yields uniform random indices. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Eligible normalizes the batch and drops every record with a banned artist,
// culture, or century.
func Eligible(records []harvardart.ObjectRecord, set bans.BanSet) []artwork.Artwork {
	eligible := make([]artwork.Artwork, 0, len(records))
	for _, rec := range records {
		a := artwork.Normalize(rec)
		if set.Excludes(a) {
			continue
		}
		eligible = append(eligible, a)
	}
	return eligible
}

// Select returns one artwork chosen uniformly at random from the records
// that survive the bans. An empty batch and a fully banned batch both fail
// with ErrNoEligibleArtworks.
func Select(records []harvardart.ObjectRecord, set bans.BanSet, src Source) (artwork.Artwork, error) {
	eligible := Eligible(records, set)
	if len(eligible) == 0 {
		return artwork.Artwork{}, ErrNoEligibleArtworks
	}
	return eligible[src.Intn(len(eligible))], nil
}
