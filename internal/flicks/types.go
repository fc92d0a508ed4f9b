package flicks

import (
	"strings"
)

// SortKey names a movie attribute the catalog can order by.
type SortKey string

const (
	SortByRating    SortKey = "rating"
	SortByRuntime   SortKey = "runtime"
	SortByName      SortKey = "movie_name"
	SortByMetascore SortKey = "metascore"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DefaultLimit is applied when a request leaves limit unset, matching
// the catalog's own default.
const DefaultLimit = 10

// Movie is a catalog entry as served by the remote API. Optional
// attributes are pointers; a fetched Movie is never mutated.
type Movie struct {
	ID              int      `json:"id"`
	Name            string   `json:"movie_name"`
	Rating          *float64 `json:"rating"`
	Runtime         *int     `json:"runtime"`
	Genre           *string  `json:"genre"`
	Metascore       *float64 `json:"metascore"`
	Plot            *string  `json:"plot"`
	Directors       *string  `json:"directors"`
	Stars           *string  `json:"stars"`
	Votes           *string  `json:"votes"`
	Gross           *string  `json:"gross"`
	PosterURL       *string  `json:"poster_url"`
	SimilarityScore *float64 `json:"similarity_score"`
}

// GenreNames splits the comma-separated genre field into clean names.
func (m Movie) GenreNames() []string {
	if m.Genre == nil {
		return nil
	}

	parts := strings.Split(*m.Genre, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// GenreCount is one entry of the catalog's genre listing.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats summarizes the catalog for filter UIs.
type Stats struct {
	MinRating   float64 `json:"min_rating"`
	MaxRating   float64 `json:"max_rating"`
	MinRuntime  int     `json:"min_runtime"`
	MaxRuntime  int     `json:"max_runtime"`
	TotalMovies int     `json:"total_movies"`
}

// StructuralRequest is a filter/sort/paginate query. Optional fields
// stay pointers and serialize as null when absent; the validate tags
// mirror the catalog's documented bounds.
type StructuralRequest struct {
	Query      *string   `json:"query"`
	Genre      *string   `json:"genre"`
	Directors  *string   `json:"directors"`
	Stars      *string   `json:"stars"`
	MinRating  *float64  `json:"min_rating" validate:"omitempty,gte=0,lte=10"`
	MaxRating  *float64  `json:"max_rating" validate:"omitempty,gte=0,lte=10"`
	MinRuntime *int      `json:"min_runtime" validate:"omitempty,gte=0"`
	MaxRuntime *int      `json:"max_runtime"`
	SortBy     SortKey   `json:"sort_by" validate:"oneof=rating runtime movie_name metascore"`
	SortOrder  SortOrder `json:"sort_order" validate:"oneof=asc desc"`
	Skip       int       `json:"skip" validate:"gte=0"`
	Limit      int       `json:"limit" validate:"gte=1,lte=100"`
}

// Normalize fills the catalog's defaults for unset fields.
func (r *StructuralRequest) Normalize() {
	if r.SortBy == "" {
		r.SortBy = SortByRating
	}
	if r.SortOrder == "" {
		r.SortOrder = SortDesc
	}
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
}

// SearchPage is the paginated structural search response. It is
// replaced wholesale on every fetch, never merged.
type SearchPage struct {
	Results []Movie `json:"results"`
	Total   int     `json:"total"`
	Skip    int     `json:"skip"`
	Limit   int     `json:"limit"`
	HasMore bool    `json:"has_more"`
}

// SemanticRequest is a free-text query; no filter parameters.
type SemanticRequest struct {
	Query string `json:"query" validate:"required,min=3"`
	Limit int    `json:"limit" validate:"gte=1,lte=100"`
}

func (r *SemanticRequest) Normalize() {
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
}

// HybridRequest combines a free-text query with structural filters.
type HybridRequest struct {
	Query      string   `json:"query" validate:"required,min=3"`
	Genre      *string  `json:"genre"`
	Directors  *string  `json:"directors"`
	Stars      *string  `json:"stars"`
	MinRating  *float64 `json:"min_rating" validate:"omitempty,gte=0,lte=10"`
	MaxRating  *float64 `json:"max_rating" validate:"omitempty,gte=0,lte=10"`
	MinRuntime *int     `json:"min_runtime" validate:"omitempty,gte=0"`
	MaxRuntime *int     `json:"max_runtime"`
	Limit      int      `json:"limit" validate:"gte=1,lte=100"`
}

func (r *HybridRequest) Normalize() {
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
}

// SemanticPage is the semantic/hybrid response. It carries no total;
// this shape is not paginated.
type SemanticPage struct {
	Results      []Movie `json:"results"`
	Query        string  `json:"query"`
	Limit        int     `json:"limit"`
	ExactMatches bool    `json:"exact_matches"`
	Message      string  `json:"message"`
}
