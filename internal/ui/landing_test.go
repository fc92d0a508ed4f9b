package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flickdeck/internal/flicks"
)

func settleLanding(m landingModel, cmd tea.Cmd) landingModel {
	for _, msg := range runCmd(cmd) {
		switch msg := msg.(type) {
		case landingLoadedMsg:
			m, _ = m.update(msg)
		case landingFailedMsg:
			m, _ = m.update(msg)
		}
	}
	return m
}

func TestLandingShelfFailureDegradesToEmptyRow(t *testing.T) {
	svc := &fakeService{structural: func(_ context.Context, req *flicks.StructuralRequest) (*flicks.SearchPage, error) {
		if req.Genre == nil {
			return &flicks.SearchPage{}, nil
		}
		if *req.Genre == "Horror" {
			return nil, netErr("structural search")
		}
		return &flicks.SearchPage{Results: movieList(*req.Genre, 3), Total: 3}, nil
	}}

	m := newLandingModel(svc, zap.NewNop())
	m.setSize(100, 40)
	m = settleLanding(m, m.init())

	require.False(t, m.loading)
	require.NoError(t, m.err)
	require.Len(t, m.rows, 8)

	for _, row := range m.rows {
		if row.shelf.Name == "Horror" {
			assert.Empty(t, row.movies, "failed shelf renders as an empty row")
			continue
		}
		require.Len(t, row.movies, 3)
		// The fan-out kept every row aligned with its shelf.
		assert.Contains(t, row.movies[0].Name, row.shelf.Name)
	}

	assert.Contains(t, m.view(), "nothing here right now")
}

func TestLandingFailsWithoutShelves(t *testing.T) {
	m := newLandingModel(&fakeService{}, zap.NewNop())
	m.rows = nil

	m = settleLanding(m, m.fetch())
	assert.Error(t, m.err)
	assert.Contains(t, m.view(), "Could not load the catalog.")
}

func TestLandingReloadIgnoresStaleResults(t *testing.T) {
	m := newLandingModel(&fakeService{}, zap.NewNop())
	old := m.token

	m, _ = m.reload()
	assert.NotEqual(t, old, m.token)

	m, _ = m.update(landingLoadedMsg{token: old, rows: make([][]flicks.Movie, len(m.rows))})
	assert.True(t, m.loading, "result for the abandoned token is dropped")
}

func TestLandingNavigation(t *testing.T) {
	svc := &fakeService{structural: func(_ context.Context, req *flicks.StructuralRequest) (*flicks.SearchPage, error) {
		return &flicks.SearchPage{Results: movieList(*req.Genre, 4), Total: 4}, nil
	}}

	m := newLandingModel(svc, zap.NewNop())
	m.setSize(100, 40)
	m = settleLanding(m, m.init())

	m, _ = m.update(press(tea.KeyDown))
	m, _ = m.update(press(tea.KeyDown))
	assert.Equal(t, 2, m.focus)

	m, _ = m.update(press(tea.KeyRight))
	assert.Equal(t, 1, m.rows[2].sel)
	m, _ = m.update(press(tea.KeyLeft))
	assert.Equal(t, 0, m.rows[2].sel)
	m, _ = m.update(press(tea.KeyLeft))
	assert.Equal(t, 0, m.rows[2].sel, "selection clamps at the first card")

	// Enter opens the focused selection.
	m, _ = m.update(press(tea.KeyRight))
	_, cmd := m.update(press(tea.KeyEnter))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, openDetailMsg{id: 2}, msgs[0])

	// g expands the focused shelf into the full listing.
	_, cmd = m.update(pressRune('g'))
	msgs = runCmd(cmd)
	require.Len(t, msgs, 1)
	listing, ok := msgs[0].(openListingMsg)
	require.True(t, ok)
	assert.Equal(t, m.rows[2].shelf.Name, listing.shelf.Name)
}

func TestLandingFocusClampsAtEdges(t *testing.T) {
	svc := &fakeService{structural: func(_ context.Context, req *flicks.StructuralRequest) (*flicks.SearchPage, error) {
		return &flicks.SearchPage{Results: movieList(*req.Genre, 1), Total: 1}, nil
	}}

	m := newLandingModel(svc, zap.NewNop())
	m.setSize(100, 40)
	m = settleLanding(m, m.init())

	m, _ = m.update(press(tea.KeyUp))
	assert.Equal(t, 0, m.focus)

	for i := 0; i < 20; i++ {
		m, _ = m.update(press(tea.KeyDown))
	}
	assert.Equal(t, len(m.rows)-1, m.focus)
}
