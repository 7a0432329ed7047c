package salon

import (
	"strings"
	"unicode"
)

const (
	DefaultPage          = 1
	DefaultLimit         = 20
	MaxLimit             = 100
	NearbyLimit          = 20
	DefaultMaxDistanceKm = 50.0
)

// Near restricts a listing to salons within MaxDistanceKm, nearest first.
type Near struct {
	Lat           float64
	Lon           float64
	MaxDistanceKm float64
}

type Filter struct {
	City     string
	Services []string
	Search   string
	Near     *Near

	Page  int
	Limit int
}

// Normalize applies the paging defaults and bounds in place.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = DefaultPage
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Near != nil && f.Near.MaxDistanceKm <= 0 {
		f.Near.MaxDistanceKm = DefaultMaxDistanceKm
	}
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Terms splits a free-text search into lowercase words. A salon matches
// when any term appears in its name, description, city or services.
func Terms(search string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, w := range strings.FieldsFunc(strings.ToLower(search), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if !seen[w] {
			seen[w] = true
			terms = append(terms, w)
		}
	}
	return terms
}
