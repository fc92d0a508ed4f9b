package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flickdeck/internal/catalog"
	"flickdeck/internal/flicks"
	"flickdeck/internal/view"
	"flickdeck/pkg/utils"
)

// listingPageSize is fixed; the page index and the total from the
// server are the only pagination state, everything else is derived.
const listingPageSize = 20

type listingResultMsg struct {
	token uuid.UUID
	page  *flicks.SearchPage
	err   error
}

type listingModel struct {
	client flicks.Service
	log    *zap.Logger

	shelf     catalog.Shelf
	page      int
	sortBy    flicks.SortKey
	sortOrder flicks.SortOrder

	movies []flicks.Movie
	total  int
	sel    int

	loading bool
	err     error
	token   uuid.UUID
	spinner spinner.Model

	width  int
	height int
}

func newListingModel(client flicks.Service, log *zap.Logger, shelf catalog.Shelf, width, height int) listingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	return listingModel{
		client:    client,
		log:       log.With(zap.String("page", "listing"), zap.String("genre", shelf.Name)),
		shelf:     shelf,
		sortBy:    flicks.SortByRating,
		sortOrder: flicks.SortDesc,
		loading:   true,
		token:     uuid.New(),
		spinner:   sp,
		width:     width,
		height:    height,
	}
}

func (m listingModel) init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m listingModel) reload() (listingModel, tea.Cmd) {
	m.token = uuid.New()
	m.loading = true
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.fetch())
}

func (m listingModel) fetch() tea.Cmd {
	client := m.client
	token := m.token
	genre := m.shelf.Name
	req := &flicks.StructuralRequest{
		Genre:     &genre,
		SortBy:    m.sortBy,
		SortOrder: m.sortOrder,
		Skip:      utils.SkipFor(m.page, listingPageSize),
		Limit:     listingPageSize,
	}

	return func() tea.Msg {
		page, err := client.StructuralSearch(context.Background(), req)
		return listingResultMsg{token: token, page: page, err: err}
	}
}

// setSort implements the toggle rule: the active key flips the order,
// a different key takes over with descending order and page zero.
func (m listingModel) setSort(sortBy flicks.SortKey) (listingModel, tea.Cmd) {
	if m.sortBy == sortBy {
		if m.sortOrder == flicks.SortDesc {
			m.sortOrder = flicks.SortAsc
		} else {
			m.sortOrder = flicks.SortDesc
		}
	} else {
		m.sortBy = sortBy
		m.sortOrder = flicks.SortDesc
		m.page = 0
	}
	return m.reload()
}

func (m listingModel) lastPage() int {
	return utils.TotalPages(m.total, listingPageSize) - 1
}

func (m listingModel) update(msg tea.Msg) (listingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case listingResultMsg:
		if msg.token != m.token {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.log.Warn("listing fetch failed",
				zap.String("reason", string(flicks.ReasonOf(msg.err))),
				zap.Error(msg.err))
			return m, nil
		}
		m.err = nil
		m.movies = msg.page.Results
		m.total = msg.page.Total
		m.sel = 0
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
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return goBackMsg{} }
		case key.Matches(msg, keys.Reload):
			return m.reload()
		case key.Matches(msg, keys.Search):
			return m, func() tea.Msg { return openSearchMsg{} }
		}

		if m.loading || m.err != nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.SortRating):
			return m.setSort(flicks.SortByRating)
		case key.Matches(msg, keys.SortName):
			return m.setSort(flicks.SortByName)
		case key.Matches(msg, keys.SortRuntime):
			return m.setSort(flicks.SortByRuntime)
		case key.Matches(msg, keys.SortMetascore):
			return m.setSort(flicks.SortByMetascore)

		case key.Matches(msg, keys.Left):
			if m.page > 0 {
				m.page--
				return m.reload()
			}
		case key.Matches(msg, keys.Right):
			if m.page < m.lastPage() {
				m.page++
				return m.reload()
			}

		case key.Matches(msg, keys.Up):
			if m.sel > 0 {
				m.sel--
			}
		case key.Matches(msg, keys.Down):
			if m.sel < len(m.movies)-1 {
				m.sel++
			}
		case key.Matches(msg, keys.Enter):
			if m.sel >= 0 && m.sel < len(m.movies) {
				id := m.movies[m.sel].ID
				return m, func() tea.Msg { return openDetailMsg{id: id} }
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *listingModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m listingModel) view() string {
	title := pageTitleStyle.Render(m.shelf.Label) +
		hintStyle.Render(fmt.Sprintf("  %d movies", m.total))

	if m.err != nil {
		return title + "\n" + errorView("Could not load this genre.")
	}
	if m.loading {
		return title + "\n" + loadingView(m.spinner, "Loading movies...")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(m.sortBar())
	b.WriteString("\n\n")

	if len(m.movies) == 0 {
		b.WriteString(hintStyle.Render(" nothing here right now"))
		return b.String()
	}

	// Window the rows around the selection; a full page of 20 does
	// not fit small terminals.
	visible := m.height - 5
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.sel >= visible {
		start = m.sel - visible + 1
	}
	end := start + visible
	if end > len(m.movies) {
		end = len(m.movies)
	}

	for i := start; i < end; i++ {
		b.WriteString(view.Row(m.movies[i], m.width-2, i == m.sel))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.pageBar())
	return b.String()
}

func (m listingModel) sortBar() string {
	options := []struct {
		binding string
		label   string
		sortBy  flicks.SortKey
	}{
		{"1", "rating", flicks.SortByRating},
		{"2", "name", flicks.SortByName},
		{"3", "runtime", flicks.SortByRuntime},
		{"4", "metascore", flicks.SortByMetascore},
	}

	parts := make([]string, 0, len(options))
	for _, opt := range options {
		label := opt.binding + " " + opt.label
		if opt.sortBy == m.sortBy {
			arrow := "↓"
			if m.sortOrder == flicks.SortAsc {
				arrow = "↑"
			}
			parts = append(parts, activeSortStyle.Render(label+" "+arrow))
		} else {
			parts = append(parts, inactiveSortStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// pageBar derives every pagination fact from total and page index.
func (m listingModel) pageBar() string {
	totalPages := utils.TotalPages(m.total, listingPageSize)
	if totalPages == 0 {
		totalPages = 1
	}

	prev := hintStyle.Render("‹ prev")
	if m.page > 0 {
		prev = indicatorStyle.Render("‹ prev")
	}
	next := hintStyle.Render("next ›")
	if m.page < m.lastPage() {
		next = indicatorStyle.Render("next ›")
	}

	return fmt.Sprintf(" %s  %s  %s",
		prev,
		hintStyle.Render(fmt.Sprintf("page %d/%d", m.page+1, totalPages)),
		next)
}
