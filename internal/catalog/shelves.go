// Package catalog holds the landing page's shelf configuration: a
// fixed, enumerated table rather than server-driven state.
package catalog

import (
	"flickdeck/internal/flicks"
)

// ShelfLimit caps each landing shelf.
const ShelfLimit = 15

// Shelf maps a genre to its display label and query defaults.
type Shelf struct {
	Name      string
	Label     string
	Limit     int
	SortBy    flicks.SortKey
	SortOrder flicks.SortOrder
}

var shelves = []Shelf{
	{Name: "Action", Label: "Action & Adventure"},
	{Name: "Comedy", Label: "Comedy"},
	{Name: "Drama", Label: "Drama"},
	{Name: "Sci-Fi", Label: "Science Fiction"},
	{Name: "Horror", Label: "Horror"},
	{Name: "Romance", Label: "Romance"},
	{Name: "Thriller", Label: "Thriller"},
	{Name: "Animation", Label: "Animation"},
}

// Shelves returns the eight landing shelves with defaults applied.
func Shelves() []Shelf {
	out := make([]Shelf, len(shelves))
	for i, s := range shelves {
		if s.Limit == 0 {
			s.Limit = ShelfLimit
		}
		if s.SortBy == "" {
			s.SortBy = flicks.SortByRating
		}
		if s.SortOrder == "" {
			s.SortOrder = flicks.SortDesc
		}
		out[i] = s
	}
	return out
}

// Request builds the structural query for one shelf.
func (s Shelf) Request() *flicks.StructuralRequest {
	genre := s.Name
	return &flicks.StructuralRequest{
		Genre:     &genre,
		SortBy:    s.SortBy,
		SortOrder: s.SortOrder,
		Limit:     s.Limit,
	}
}
