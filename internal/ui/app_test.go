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

func sizedApp(t *testing.T, svc flicks.Service) App {
	t.Helper()

	app := NewApp(svc, zap.NewNop())
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(App)
}

func TestAppRoutesResultsToBackgroundPages(t *testing.T) {
	app := sizedApp(t, &fakeService{})

	// Open a listing, then navigate away before its fetch lands.
	model, _ := app.Update(openListingMsg{shelf: testShelf()})
	app = model.(App)
	require.Equal(t, pageListing, app.page)
	token := app.listing.token

	model, _ = app.Update(openDetailMsg{id: 5})
	app = model.(App)
	require.Equal(t, pageDetail, app.page)

	// The listing result still reaches the listing model.
	model, _ = app.Update(listingResultMsg{token: token, page: &flicks.SearchPage{Results: movieList("Drama", 2), Total: 40}})
	app = model.(App)
	assert.Equal(t, pageDetail, app.page, "the front page does not change")
	assert.False(t, app.listing.loading)
	assert.Equal(t, 40, app.listing.total)
}

func TestAppBackKeepsLandingState(t *testing.T) {
	svc := &fakeService{structural: func(_ context.Context, req *flicks.StructuralRequest) (*flicks.SearchPage, error) {
		return &flicks.SearchPage{Results: movieList(*req.Genre, 2), Total: 2}, nil
	}}

	app := sizedApp(t, svc)
	for _, msg := range runCmd(app.landing.init()) {
		if loaded, ok := msg.(landingLoadedMsg); ok {
			model, _ := app.Update(loaded)
			app = model.(App)
		}
	}
	require.False(t, app.landing.loading)

	model, _ := app.Update(openDetailMsg{id: 3})
	app = model.(App)
	require.Equal(t, pageDetail, app.page)

	model, cmd := app.Update(goBackMsg{})
	app = model.(App)
	assert.Equal(t, pageLanding, app.page)
	assert.Nil(t, cmd, "returning does not refetch")
	assert.False(t, app.landing.loading)
	assert.NotEmpty(t, app.landing.rows[0].movies)
}

func TestAppQuitKeys(t *testing.T) {
	app := sizedApp(t, &fakeService{})

	_, cmd := app.Update(pressRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppQuitSuppressedWhileTyping(t *testing.T) {
	app := sizedApp(t, &fakeService{})

	model, _ := app.Update(openSearchMsg{})
	app = model.(App)
	require.True(t, app.typing())

	// q is just another letter for the search input.
	model, _ = app.Update(pressRune('q'))
	app = model.(App)
	assert.Contains(t, app.search.input.Value(), "q")

	// ctrl+c still quits mid-typing.
	_, cmd := app.Update(press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppHelpToggleAndBodyHeight(t *testing.T) {
	app := NewApp(&fakeService{}, zap.NewNop())
	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app = model.(App)
	assert.Equal(t, 22, app.bodyHeight())

	model, _ = app.Update(pressRune('?'))
	app = model.(App)
	assert.True(t, app.help.ShowAll)
	assert.Equal(t, 19, app.bodyHeight())

	model, _ = app.Update(pressRune('?'))
	app = model.(App)
	assert.False(t, app.help.ShowAll)
}

func TestAppViewBeforeAndAfterSizing(t *testing.T) {
	app := NewApp(&fakeService{}, zap.NewNop())
	assert.Equal(t, "Loading...", app.View(), "no frame before the first window size")

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app = model.(App)

	out := app.View()
	assert.Contains(t, out, "flickdeck")
	assert.Contains(t, out, "browse")
}
