// Package ui holds the terminal interface. One root App model routes
// between page models (landing, listing, detail, search); pages never
// talk to each other directly, they emit navigation messages that
// bubble up here.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"flickdeck/internal/catalog"
	"flickdeck/internal/flicks"
)

type page int

const (
	pageLanding page = iota
	pageListing
	pageDetail
	pageSearch
)

// Navigation messages emitted by pages and handled by the root model.
// Back always returns to the landing page.
type (
	openListingMsg struct{ shelf catalog.Shelf }
	openDetailMsg  struct{ id int }
	openSearchMsg  struct{}
	goBackMsg      struct{}
)

type App struct {
	client flicks.Service
	log    *zap.Logger

	keys keyMap
	help help.Model

	width  int
	height int

	page    page
	landing landingModel
	listing listingModel
	detail  detailModel
	search  searchModel
}

func NewApp(client flicks.Service, log *zap.Logger) App {
	return App{
		client:  client,
		log:     log.With(zap.String("component", "ui")),
		keys:    keys,
		help:    help.New(),
		page:    pageLanding,
		landing: newLandingModel(client, log),
	}
}

func (a App) Init() tea.Cmd {
	return a.landing.init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		body := a.bodyHeight()
		a.landing.setSize(msg.Width, body)
		a.listing.setSize(msg.Width, body)
		a.detail.setSize(msg.Width, body)
		a.search.setSize(msg.Width, body)
		return a, nil

	case openListingMsg:
		a.page = pageListing
		a.listing = newListingModel(a.client, a.log, msg.shelf, a.width, a.bodyHeight())
		return a, a.listing.init()

	case openDetailMsg:
		a.page = pageDetail
		a.detail = newDetailModel(a.client, a.log, msg.id, a.width, a.bodyHeight())
		return a, a.detail.init()

	case openSearchMsg:
		a.page = pageSearch
		a.search = newSearchModel(a.client, a.log, a.width, a.bodyHeight())
		return a, a.search.init()

	case goBackMsg:
		a.page = pageLanding
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if !a.typing() {
			if key.Matches(msg, a.keys.Quit) {
				return a, tea.Quit
			}
			if key.Matches(msg, a.keys.Help) {
				a.help.ShowAll = !a.help.ShowAll
				return a, nil
			}
		}
		return a.updatePage(msg)
	}

	// Fetch results are routed to the page that owns them, whether or
	// not it is in front: a response may land after the user navigated
	// away and its page still wants the data for when they come back.
	var cmd tea.Cmd
	switch msg.(type) {
	case landingLoadedMsg, landingFailedMsg:
		a.landing, cmd = a.landing.update(msg)
		return a, cmd
	case listingResultMsg:
		a.listing, cmd = a.listing.update(msg)
		return a, cmd
	case detailResultMsg:
		a.detail, cmd = a.detail.update(msg)
		return a, cmd
	case searchResultMsg, genresLoadedMsg, statsLoadedMsg:
		a.search, cmd = a.search.update(msg)
		return a, cmd
	}

	return a.updatePage(msg)
}

func (a App) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.page {
	case pageLanding:
		a.landing, cmd = a.landing.update(msg)
	case pageListing:
		a.listing, cmd = a.listing.update(msg)
	case pageDetail:
		a.detail, cmd = a.detail.update(msg)
	case pageSearch:
		a.search, cmd = a.search.update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var body string
	switch a.page {
	case pageLanding:
		body = a.landing.view()
	case pageListing:
		body = a.listing.view()
	case pageDetail:
		body = a.detail.view()
	case pageSearch:
		body = a.search.view()
	}

	bodyStyle := lipgloss.NewStyle().
		Width(a.width).
		Height(a.bodyHeight()).
		MaxHeight(a.bodyHeight())

	return lipgloss.JoinVertical(lipgloss.Left,
		titleBarStyle.Render("flickdeck")+hintStyle.Render("  "+a.pageName()),
		bodyStyle.Render(body),
		a.help.View(a.keys),
	)
}

func (a App) pageName() string {
	switch a.page {
	case pageListing:
		return "genre listing"
	case pageDetail:
		return "movie detail"
	case pageSearch:
		return "search"
	default:
		return "browse"
	}
}

// bodyHeight is the window height minus the title bar and help line.
func (a App) bodyHeight() int {
	h := a.height - 2
	if a.help.ShowAll {
		h -= 3
	}
	if h < 1 {
		h = 1
	}
	return h
}

// typing reports whether the search input currently owns the
// keyboard, in which case printable keys must not trigger bindings.
func (a App) typing() bool {
	return a.page == pageSearch && a.search.typing()
}

func loadingView(sp spinner.Model, text string) string {
	return "\n " + sp.View() + " " + hintStyle.Render(text)
}

func errorView(text string) string {
	return "\n " + errorStyle.Render(text) + "\n " + hintStyle.Render("press r to retry")
}
