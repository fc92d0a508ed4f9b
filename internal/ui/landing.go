package ui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flickdeck/internal/catalog"
	"flickdeck/internal/flicks"
	"flickdeck/internal/view"
)

type landingLoadedMsg struct {
	token uuid.UUID
	rows  [][]flicks.Movie
}

type landingFailedMsg struct {
	token uuid.UUID
	err   error
}

type shelfRow struct {
	shelf    catalog.Shelf
	movies   []flicks.Movie
	sel      int
	carousel view.Carousel
}

type landingModel struct {
	client flicks.Service
	log    *zap.Logger

	rows  []shelfRow
	focus int

	loading bool
	err     error
	token   uuid.UUID
	spinner spinner.Model

	width  int
	height int
}

func newLandingModel(client flicks.Service, log *zap.Logger) landingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	shelves := catalog.Shelves()
	rows := make([]shelfRow, len(shelves))
	for i, s := range shelves {
		rows[i] = shelfRow{shelf: s}
	}

	return landingModel{
		client:  client,
		log:     log.With(zap.String("page", "landing")),
		rows:    rows,
		loading: true,
		token:   uuid.New(),
		spinner: sp,
	}
}

func (m landingModel) init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m landingModel) reload() (landingModel, tea.Cmd) {
	m.token = uuid.New()
	m.loading = true
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch loads every shelf in one command: one goroutine per shelf,
// joined before the message is emitted. A shelf that fails comes back
// as an empty row and is only logged; the page-level failure path
// exists for the degenerate cases (an empty shelf table).
func (m landingModel) fetch() tea.Cmd {
	client := m.client
	log := m.log
	token := m.token
	shelves := make([]catalog.Shelf, len(m.rows))
	for i, row := range m.rows {
		shelves[i] = row.shelf
	}

	return func() tea.Msg {
		if len(shelves) == 0 {
			return landingFailedMsg{token: token, err: errors.New("no shelves configured")}
		}

		ctx := context.Background()
		rows := make([][]flicks.Movie, len(shelves))

		var wg sync.WaitGroup
		for i, shelf := range shelves {
			wg.Add(1)
			go func(i int, shelf catalog.Shelf) {
				defer wg.Done()
				page, err := client.StructuralSearch(ctx, shelf.Request())
				if err != nil {
					log.Warn("shelf fetch failed",
						zap.String("shelf", shelf.Name),
						zap.String("reason", string(flicks.ReasonOf(err))),
						zap.Error(err))
					return
				}
				rows[i] = page.Results
			}(i, shelf)
		}
		wg.Wait()

		return landingLoadedMsg{token: token, rows: rows}
	}
}

func (m landingModel) update(msg tea.Msg) (landingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case landingLoadedMsg:
		if msg.token != m.token {
			return m, nil
		}
		m.loading = false
		m.err = nil
		for i := range m.rows {
			var movies []flicks.Movie
			if i < len(msg.rows) {
				movies = msg.rows[i]
			}
			m.rows[i].movies = movies
			m.rows[i].sel = 0
			m.rows[i].carousel.Reset()
			m.rows[i].carousel.SetContentWidth(len(movies) * view.CardWidth)
			m.rows[i].carousel.SetViewportWidth(m.shelfViewport())
		}
		return m, nil

	case landingFailedMsg:
		if msg.token != m.token {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.log.Error("landing load failed", zap.Error(msg.err))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Reload):
			return m.reload()
		case key.Matches(msg, keys.Search):
			return m, func() tea.Msg { return openSearchMsg{} }
		}

		if m.loading || m.err != nil || len(m.rows) == 0 {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Up):
			if m.focus > 0 {
				m.focus--
			}
		case key.Matches(msg, keys.Down):
			if m.focus < len(m.rows)-1 {
				m.focus++
			}
		case key.Matches(msg, keys.Left):
			row := &m.rows[m.focus]
			if row.sel > 0 {
				row.sel--
				row.carousel.EnsureVisible(row.sel*view.CardWidth, (row.sel+1)*view.CardWidth)
			}
		case key.Matches(msg, keys.Right):
			row := &m.rows[m.focus]
			if row.sel < len(row.movies)-1 {
				row.sel++
				row.carousel.EnsureVisible(row.sel*view.CardWidth, (row.sel+1)*view.CardWidth)
			}
		case key.Matches(msg, keys.ScrollLeft):
			m.rows[m.focus].carousel.ScrollLeft()
		case key.Matches(msg, keys.ScrollRight):
			m.rows[m.focus].carousel.ScrollRight()
		case key.Matches(msg, keys.Enter):
			if movie, ok := m.selected(); ok {
				id := movie.ID
				return m, func() tea.Msg { return openDetailMsg{id: id} }
			}
		case key.Matches(msg, keys.Listing):
			shelf := m.rows[m.focus].shelf
			return m, func() tea.Msg { return openListingMsg{shelf: shelf} }
		}
		return m, nil
	}

	return m, nil
}

func (m landingModel) selected() (flicks.Movie, bool) {
	if m.focus < 0 || m.focus >= len(m.rows) {
		return flicks.Movie{}, false
	}
	row := m.rows[m.focus]
	if row.sel < 0 || row.sel >= len(row.movies) {
		return flicks.Movie{}, false
	}
	return row.movies[row.sel], true
}

func (m *landingModel) setSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.rows {
		m.rows[i].carousel.SetViewportWidth(m.shelfViewport())
	}
}

// shelfViewport leaves one column on each side for the ‹ › markers.
func (m landingModel) shelfViewport() int {
	w := m.width - 2
	if w < view.CardWidth {
		w = view.CardWidth
	}
	return w
}

func (m landingModel) view() string {
	if m.err != nil {
		return errorView("Could not load the catalog.")
	}
	if m.loading {
		return loadingView(m.spinner, "Loading shelves...")
	}

	shelfHeight := view.CardHeight + 2
	visible := m.height / shelfHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.focus >= visible {
		start = m.focus - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderShelf(i))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m landingModel) renderShelf(i int) string {
	row := m.rows[i]

	label := shelfLabelStyle.Render(row.shelf.Label)
	if i == m.focus {
		label = focusedShelfLabelStyle.Render("» " + row.shelf.Label)
	}

	if len(row.movies) == 0 {
		return label + "\n" + hintStyle.Render("  nothing here right now") + "\n"
	}

	first, last := row.carousel.VisibleRange(view.CardWidth, len(row.movies))
	parts := make([]string, 0, last-first+2)

	if row.carousel.CanScrollLeft() {
		parts = append(parts, indicatorStyle.Render("‹"))
	} else {
		parts = append(parts, " ")
	}
	for j := first; j < last; j++ {
		parts = append(parts, view.Card(row.movies[j], i == m.focus && j == row.sel))
	}
	if row.carousel.CanScrollRight() {
		parts = append(parts, indicatorStyle.Render("›"))
	}

	// The window may end on a partially visible card; clip the row.
	cards := lipgloss.NewStyle().MaxWidth(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, parts...))

	return label + "\n" + cards + "\n"
}
