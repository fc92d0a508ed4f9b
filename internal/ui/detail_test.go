package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flickdeck/internal/flicks"
	"flickdeck/internal/view"
)

func settleDetail(m detailModel, cmd tea.Cmd) detailModel {
	for _, msg := range runCmd(cmd) {
		if result, ok := msg.(detailResultMsg); ok {
			m, _ = m.update(result)
		}
	}
	return m
}

func TestDetailFailuresCollapseToNotFound(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"real 404", &flicks.Error{Op: "movie by id", Reason: flicks.ReasonNotFound, Status: 404, Err: flicks.ErrNotFound}},
		{"network failure", netErr("movie by id")},
		{"remote error", &flicks.Error{Op: "movie by id", Reason: flicks.ReasonRemote, Status: 500, Err: errors.New("remote error: boom")}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &fakeService{movieByID: func(_ context.Context, _ int) (*flicks.Movie, error) {
				return nil, c.err
			}}

			m := newDetailModel(svc, zap.NewNop(), 7, 80, 24)
			m = settleDetail(m, m.init())

			assert.True(t, m.notFound)
			assert.Contains(t, m.view(), "Movie not found.")
		})
	}
}

func TestDetailRendersMovie(t *testing.T) {
	rating := 9.3
	runtime := 142
	genre := "Crime, Drama"
	directors := "Frank Darabont"
	plot := "Two imprisoned men bond over a number of years."
	poster := "https://posters.flickdeck.dev/shawshank-redemption.jpg"

	svc := &fakeService{movieByID: func(_ context.Context, id int) (*flicks.Movie, error) {
		return &flicks.Movie{
			ID: id, Name: "The Shawshank Redemption",
			Rating: &rating, Runtime: &runtime, Genre: &genre,
			Directors: &directors, Plot: &plot, PosterURL: &poster,
		}, nil
	}}

	m := newDetailModel(svc, zap.NewNop(), 1, 80, 24)
	m = settleDetail(m, m.init())

	require.NotNil(t, m.movie)
	assert.False(t, m.notFound)

	content := m.renderContent()
	assert.Contains(t, content, "The Shawshank Redemption")
	assert.Contains(t, content, "9.3")
	assert.Contains(t, content, "2h 22m")
	assert.Contains(t, content, "Crime · Drama")
	assert.Contains(t, content, "Frank Darabont")
	assert.Contains(t, content, poster)
}

func TestDetailMissingFieldsUsePlaceholders(t *testing.T) {
	svc := &fakeService{movieByID: func(_ context.Context, id int) (*flicks.Movie, error) {
		genre := "Action, Comedy"
		plot := "Secret agent Michael Scarn comes out of retirement."
		return &flicks.Movie{ID: id, Name: "Threat Level Midnight", Genre: &genre, Plot: &plot}, nil
	}}

	m := newDetailModel(svc, zap.NewNop(), 34, 80, 24)
	m = settleDetail(m, m.init())

	content := m.renderContent()
	assert.Contains(t, content, "★ "+view.Missing)
	assert.Contains(t, content, "poster unavailable")
}

func TestDetailStaleResultDropped(t *testing.T) {
	m := newDetailModel(&fakeService{}, zap.NewNop(), 7, 80, 24)

	movie := flicks.Movie{ID: 999, Name: "Wrong Fetch"}
	m, _ = m.update(detailResultMsg{token: uuid.New(), movie: &movie})
	assert.True(t, m.loading)
	assert.Nil(t, m.movie)
}

func TestDetailRetryRecovers(t *testing.T) {
	healthy := false
	svc := &fakeService{movieByID: func(_ context.Context, id int) (*flicks.Movie, error) {
		if !healthy {
			return nil, netErr("movie by id")
		}
		return &flicks.Movie{ID: id, Name: "Primer"}, nil
	}}

	m := newDetailModel(svc, zap.NewNop(), 32, 80, 24)
	m = settleDetail(m, m.init())
	require.True(t, m.notFound)

	healthy = true
	var cmd tea.Cmd
	m, cmd = m.update(pressRune('r'))
	m = settleDetail(m, cmd)
	assert.False(t, m.notFound)
	require.NotNil(t, m.movie)
	assert.Equal(t, "Primer", m.movie.Name)
}

func TestDetailBackNavigates(t *testing.T) {
	m := newDetailModel(&fakeService{}, zap.NewNop(), 7, 80, 24)

	_, cmd := m.update(press(tea.KeyEsc))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, goBackMsg{}, msgs[0])
}
