// Package bans tracks attribute values the user has excluded from future
// selections. BanSet is an immutable value: Add, Remove, and Clear return a
// new set and never touch the receiver, so callers can hold the current set
// and swap it wholesale.
package bans

import (
	"sort"
	"strings"

	"github.com/openglam/artroulette/internal/artwork"
)

// BanSet holds one set of banned values per banable attribute.
type BanSet struct {
	values map[artwork.Attribute]map[string]struct{}
}

// New returns an empty BanSet.
func New() BanSet {
	return BanSet{}
}

// Add returns a set that also bans value under attr. Empty and Unknown
// values are ignored: banning "N/A" would ban everything the catalog left
// blank.
func (b BanSet) Add(attr artwork.Attribute, value string) (BanSet, error) {
	if _, err := artwork.ParseAttribute(string(attr)); err != nil {
		return b, err
	}
	if strings.TrimSpace(value) == "" || value == artwork.Unknown {
		return b, nil
	}
	if b.Contains(attr, value) {
		return b, nil
	}
	next := b.clone()
	next.values[attr][value] = struct{}{}
	return next, nil
}

// Remove returns a set without value under attr. Removing an absent value
// is a no-op.
func (b BanSet) Remove(attr artwork.Attribute, value string) (BanSet, error) {
	if _, err := artwork.ParseAttribute(string(attr)); err != nil {
		return b, err
	}
	if !b.Contains(attr, value) {
		return b, nil
	}
	next := b.clone()
	delete(next.values[attr], value)
	return next, nil
}

// Clear returns the empty set.
func (b BanSet) Clear() BanSet {
	return New()
}

// Contains reports whether value is banned under attr.
func (b BanSet) Contains(attr artwork.Attribute, value string) bool {
	if b.values == nil {
		return false
	}
	_, ok := b.values[attr][value]
	return ok
}

// Values returns the banned values for attr in sorted order.
func (b BanSet) Values(attr artwork.Attribute) []string {
	if b.values == nil || len(b.values[attr]) == 0 {
		return nil
	}
	out := make([]string, 0, len(b.values[attr]))
	for v := range b.values[attr] {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Len returns the total number of banned values across all attributes.
func (b BanSet) Len() int {
	n := 0
	for _, set := range b.values {
		n += len(set)
	}
	return n
}

// Excludes reports whether any banable attribute of a is banned.
func (b BanSet) Excludes(a artwork.Artwork) bool {
	for _, attr := range artwork.Attributes {
		if b.Contains(attr, a.AttributeValue(attr)) {
			return true
		}
	}
	return false
}

func (b BanSet) clone() BanSet {
	next := BanSet{values: make(map[artwork.Attribute]map[string]struct{}, len(artwork.Attributes))}
	for _, attr := range artwork.Attributes {
		set := make(map[string]struct{}, len(b.values[attr]))
		for v := range b.values[attr] {
			set[v] = struct{}{}
		}
		next.values[attr] = set
	}
	return next
}
