package mockapi

import (
	"regexp"
	"sort"
	"strings"

	"flickdeck/internal/flicks"

	"go.uber.org/zap"
)

// exactMatchThreshold separates exact semantic matches from weaker
// "similar movies" results.
const exactMatchThreshold = 0.6

// Store answers catalog queries from a fixed movie slice.
type Store struct {
	movies []flicks.Movie
	log    *zap.Logger
}

func NewStore(movies []flicks.Movie, log *zap.Logger) *Store {
	return &Store{
		movies: movies,
		log:    log.With(zap.String("store", "catalog")),
	}
}

// Search applies filters, counts the total BEFORE pagination, then
// sorts (nulls last) and slices the requested window.
func (s *Store) Search(req *flicks.StructuralRequest) ([]flicks.Movie, int) {
	matched := s.filter(req.Query, req.Genre, req.Directors, req.Stars,
		req.MinRating, req.MaxRating, req.MinRuntime, req.MaxRuntime)

	total := len(matched)

	sortMovies(matched, req.SortBy, req.SortOrder)

	start := req.Skip
	if start > len(matched) {
		start = len(matched)
	}
	end := start + req.Limit
	if end > len(matched) {
		end = len(matched)
	}

	s.log.Debug("Structural search executed",
		zap.Int("returned", end-start),
		zap.Int("total", total),
	)

	return matched[start:end], total
}

// MovieByID returns nil when the catalog has no such movie.
func (s *Store) MovieByID(id int) *flicks.Movie {
	for i := range s.movies {
		if s.movies[i].ID == id {
			movie := s.movies[i]
			return &movie
		}
	}
	return nil
}

// Genres splits the comma-separated genre fields, counts every name,
// and orders by count descending.
func (s *Store) Genres() []flicks.GenreCount {
	counts := make(map[string]int)
	for _, movie := range s.movies {
		for _, name := range movie.GenreNames() {
			counts[name]++
		}
	}

	genres := make([]flicks.GenreCount, 0, len(counts))
	for name, count := range counts {
		genres = append(genres, flicks.GenreCount{Name: name, Count: count})
	}

	sort.Slice(genres, func(i, j int) bool {
		if genres[i].Count != genres[j].Count {
			return genres[i].Count > genres[j].Count
		}
		return genres[i].Name < genres[j].Name
	})

	return genres
}

// Stats aggregates rating/runtime extremes over the non-nil values,
// falling back to fixed bounds on an empty catalog.
func (s *Store) Stats() *flicks.Stats {
	var minRating, maxRating *float64
	var minRuntime, maxRuntime *int

	for i := range s.movies {
		if r := s.movies[i].Rating; r != nil {
			if minRating == nil || *r < *minRating {
				minRating = r
			}
			if maxRating == nil || *r > *maxRating {
				maxRating = r
			}
		}
		if rt := s.movies[i].Runtime; rt != nil {
			if minRuntime == nil || *rt < *minRuntime {
				minRuntime = rt
			}
			if maxRuntime == nil || *rt > *maxRuntime {
				maxRuntime = rt
			}
		}
	}

	stats := &flicks.Stats{
		MinRating:   0.0,
		MaxRating:   10.0,
		MinRuntime:  0,
		MaxRuntime:  300,
		TotalMovies: len(s.movies),
	}
	if minRating != nil {
		stats.MinRating = *minRating
	}
	if maxRating != nil {
		stats.MaxRating = *maxRating
	}
	if minRuntime != nil {
		stats.MinRuntime = *minRuntime
	}
	if maxRuntime != nil {
		stats.MaxRuntime = *maxRuntime
	}

	return stats
}

// Semantic scores the whole catalog against the query text.
func (s *Store) Semantic(req *flicks.SemanticRequest) ([]flicks.Movie, bool, string) {
	scored := s.score(s.movies, req.Query, req.Limit)
	if len(scored) == 0 {
		return nil, false, "No movies found"
	}
	if best := scored[0].SimilarityScore; best != nil && *best >= exactMatchThreshold {
		return scored, true, "Movies found matching your query"
	}
	return scored, false, "No exact matches found, but here are some similar movies"
}

// Hybrid filters structurally first, then ranks by the query text.
func (s *Store) Hybrid(req *flicks.HybridRequest) ([]flicks.Movie, bool, string) {
	matched := s.filter(nil, req.Genre, req.Directors, req.Stars,
		req.MinRating, req.MaxRating, req.MinRuntime, req.MaxRuntime)

	scored := s.score(matched, req.Query, req.Limit)
	if len(scored) == 0 {
		return nil, false, "No movies found matching your criteria"
	}
	if best := scored[0].SimilarityScore; best != nil && *best >= exactMatchThreshold {
		return scored, true, "Movies found matching your query"
	}
	return scored, false, "No exact matches found, but here are some similar movies"
}

func (s *Store) filter(query, genre, directors, stars *string, minRating, maxRating *float64, minRuntime, maxRuntime *int) []flicks.Movie {
	matched := make([]flicks.Movie, 0, len(s.movies))

	for _, movie := range s.movies {
		if query != nil && !containsFold(movie.Name, *query) {
			continue
		}
		if genre != nil && !containsFoldPtr(movie.Genre, *genre) {
			continue
		}
		if directors != nil && !containsFoldPtr(movie.Directors, *directors) {
			continue
		}
		if stars != nil && !containsFoldPtr(movie.Stars, *stars) {
			continue
		}
		// Range filters drop movies with the attribute missing, the way
		// a SQL comparison against NULL would.
		if minRating != nil && (movie.Rating == nil || *movie.Rating < *minRating) {
			continue
		}
		if maxRating != nil && (movie.Rating == nil || *movie.Rating > *maxRating) {
			continue
		}
		if minRuntime != nil && (movie.Runtime == nil || *movie.Runtime < *minRuntime) {
			continue
		}
		if maxRuntime != nil && (movie.Runtime == nil || *movie.Runtime > *maxRuntime) {
			continue
		}

		matched = append(matched, movie)
	}

	return matched
}

var wordSplit = regexp.MustCompile(`[^a-z0-9]+`)

// score ranks movies by keyword overlap with the query and returns the
// top results, each stamped with its similarity score.
func (s *Store) score(movies []flicks.Movie, query string, limit int) []flicks.Movie {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	type scoredMovie struct {
		movie flicks.Movie
		score float64
	}

	scored := make([]scoredMovie, 0, len(movies))
	for _, movie := range movies {
		text := searchText(movie)

		matched := 0
		for _, token := range tokens {
			if strings.Contains(text, token) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		scored = append(scored, scoredMovie{
			movie: movie,
			score: float64(matched) / float64(len(tokens)),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]flicks.Movie, len(scored))
	for i, sm := range scored {
		movie := sm.movie
		score := sm.score
		movie.SimilarityScore = &score
		results[i] = movie
	}
	return results
}

func tokenize(query string) []string {
	parts := wordSplit.Split(strings.ToLower(query), -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func searchText(movie flicks.Movie) string {
	fields := []string{movie.Name}
	for _, ptr := range []*string{movie.Plot, movie.Genre, movie.Directors, movie.Stars} {
		if ptr != nil {
			fields = append(fields, *ptr)
		}
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// sortMovies orders in place with missing values last in both
// directions, matching the catalog's nulls-last ordering.
func sortMovies(movies []flicks.Movie, key flicks.SortKey, order flicks.SortOrder) {
	asc := order == flicks.SortAsc

	sort.SliceStable(movies, func(i, j int) bool {
		if key == flicks.SortByName {
			if asc {
				return movies[i].Name < movies[j].Name
			}
			return movies[i].Name > movies[j].Name
		}

		a := numericKey(movies[i], key)
		b := numericKey(movies[j], key)
		if (a == nil) != (b == nil) {
			return b == nil
		}
		if a == nil {
			return false
		}
		if asc {
			return *a < *b
		}
		return *a > *b
	})
}

func numericKey(movie flicks.Movie, key flicks.SortKey) *float64 {
	switch key {
	case flicks.SortByRating:
		return movie.Rating
	case flicks.SortByRuntime:
		if movie.Runtime == nil {
			return nil
		}
		value := float64(*movie.Runtime)
		return &value
	case flicks.SortByMetascore:
		return movie.Metascore
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsFoldPtr(haystack *string, needle string) bool {
	if haystack == nil {
		return false
	}
	return containsFold(*haystack, needle)
}
