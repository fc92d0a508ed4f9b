package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"flickdeck/internal/catalog"
	"flickdeck/internal/flicks"
)

// fakeService satisfies flicks.Service through per-operation hooks, so
// each test wires only what its page calls. Unset hooks answer with an
// empty success.
type fakeService struct {
	genres     func(ctx context.Context) ([]flicks.GenreCount, error)
	stats      func(ctx context.Context) (*flicks.Stats, error)
	structural func(ctx context.Context, req *flicks.StructuralRequest) (*flicks.SearchPage, error)
	movieByID  func(ctx context.Context, id int) (*flicks.Movie, error)
	semantic   func(ctx context.Context, req *flicks.SemanticRequest) (*flicks.SemanticPage, error)
	hybrid     func(ctx context.Context, req *flicks.HybridRequest) (*flicks.SemanticPage, error)
}

func (f *fakeService) Genres(ctx context.Context) ([]flicks.GenreCount, error) {
	if f.genres == nil {
		return nil, nil
	}
	return f.genres(ctx)
}

func (f *fakeService) Stats(ctx context.Context) (*flicks.Stats, error) {
	if f.stats == nil {
		return &flicks.Stats{}, nil
	}
	return f.stats(ctx)
}

func (f *fakeService) StructuralSearch(ctx context.Context, req *flicks.StructuralRequest) (*flicks.SearchPage, error) {
	if f.structural == nil {
		return &flicks.SearchPage{}, nil
	}
	return f.structural(ctx, req)
}

func (f *fakeService) MovieByID(ctx context.Context, id int) (*flicks.Movie, error) {
	if f.movieByID == nil {
		return &flicks.Movie{ID: id}, nil
	}
	return f.movieByID(ctx, id)
}

func (f *fakeService) SemanticSearch(ctx context.Context, req *flicks.SemanticRequest) (*flicks.SemanticPage, error) {
	if f.semantic == nil {
		return &flicks.SemanticPage{}, nil
	}
	return f.semantic(ctx, req)
}

func (f *fakeService) HybridSearch(ctx context.Context, req *flicks.HybridRequest) (*flicks.SemanticPage, error) {
	if f.hybrid == nil {
		return &flicks.SemanticPage{}, nil
	}
	return f.hybrid(ctx, req)
}

// runCmd executes a command tree synchronously and collects every
// message it produces, flattening batches on the way.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func press(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func pressRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func movieList(genre string, n int) []flicks.Movie {
	movies := make([]flicks.Movie, n)
	for i := range movies {
		rating := 9.0 - float64(i)*0.1
		movies[i] = flicks.Movie{
			ID:     i + 1,
			Name:   fmt.Sprintf("%s #%d", genre, i+1),
			Rating: &rating,
			Genre:  &genre,
		}
	}
	return movies
}

func testShelf() catalog.Shelf {
	return catalog.Shelves()[2] // Drama
}

func netErr(op string) error {
	return &flicks.Error{Op: op, Reason: flicks.ReasonNetwork, Err: errors.New("connection refused")}
}
