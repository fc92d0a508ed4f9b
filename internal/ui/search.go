package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flickdeck/internal/flicks"
	"flickdeck/internal/view"
)

const searchLimit = 20

type searchMode int

const (
	modeSemantic searchMode = iota
	modeHybrid
)

type genresLoadedMsg struct{ genres []flicks.GenreCount }

type statsLoadedMsg struct{ stats *flicks.Stats }

type searchResultMsg struct {
	token uuid.UUID
	page  *flicks.SemanticPage
	err   error
}

type searchModel struct {
	client flicks.Service
	log    *zap.Logger

	input textinput.Model
	mode  searchMode

	// genreIdx 0 means no filter; i>0 selects genres[i-1].
	genres   []flicks.GenreCount
	genreIdx int
	stats    *flicks.Stats

	query        string
	results      []flicks.Movie
	message      string
	exactMatches bool
	searched     bool
	sel          int
	focusResults bool

	loading bool
	errText string
	token   uuid.UUID
	spinner spinner.Model

	width  int
	height int
}

func newSearchModel(client flicks.Service, log *zap.Logger, width, height int) searchModel {
	ti := textinput.New()
	ti.Placeholder = "movies about..."
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	return searchModel{
		client:  client,
		log:     log.With(zap.String("page", "search")),
		input:   ti,
		spinner: sp,
		width:   width,
		height:  height,
	}
}

// init fetches genre counts and stats for the filter and summary
// chrome. Either can fail without consequence, the search box works
// regardless.
func (m searchModel) init() tea.Cmd {
	client := m.client
	log := m.log

	fetchGenres := func() tea.Msg {
		genres, err := client.Genres(context.Background())
		if err != nil {
			log.Warn("genre list unavailable",
				zap.String("reason", string(flicks.ReasonOf(err))),
				zap.Error(err))
			return genresLoadedMsg{}
		}
		return genresLoadedMsg{genres: genres}
	}
	fetchStats := func() tea.Msg {
		stats, err := client.Stats(context.Background())
		if err != nil {
			log.Warn("catalog stats unavailable",
				zap.String("reason", string(flicks.ReasonOf(err))),
				zap.Error(err))
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{stats: stats}
	}

	return tea.Batch(textinput.Blink, fetchGenres, fetchStats)
}

func (m searchModel) typing() bool {
	return m.input.Focused()
}

func (m searchModel) genreFilter() *string {
	if m.genreIdx <= 0 || m.genreIdx > len(m.genres) {
		return nil
	}
	name := m.genres[m.genreIdx-1].Name
	return &name
}

func (m searchModel) submit(query string) (searchModel, tea.Cmd) {
	m.query = query
	m.token = uuid.New()
	m.loading = true
	m.errText = ""
	m.searched = true
	m.focusResults = false

	client := m.client
	token := m.token
	mode := m.mode
	genre := m.genreFilter()

	fetch := func() tea.Msg {
		ctx := context.Background()
		var page *flicks.SemanticPage
		var err error
		if mode == modeSemantic {
			page, err = client.SemanticSearch(ctx, &flicks.SemanticRequest{
				Query: query,
				Limit: searchLimit,
			})
		} else {
			page, err = client.HybridSearch(ctx, &flicks.HybridRequest{
				Query: query,
				Genre: genre,
				Limit: searchLimit,
			})
		}
		return searchResultMsg{token: token, page: page, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, fetch)
}

// resubmit re-runs the last search, used when the mode or the genre
// filter changes under an existing query.
func (m searchModel) resubmit() (searchModel, tea.Cmd) {
	if m.query == "" {
		return m, nil
	}
	return m.submit(m.query)
}

func (m searchModel) update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case genresLoadedMsg:
		m.genres = msg.genres
		m.genreIdx = 0
		return m, nil

	case statsLoadedMsg:
		m.stats = msg.stats
		return m, nil

	case searchResultMsg:
		if msg.token != m.token {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.results = nil
			m.message = ""
			m.errText = "Search failed. Try again."
			m.log.Warn("search failed",
				zap.String("reason", string(flicks.ReasonOf(msg.err))),
				zap.Error(msg.err))
			return m, nil
		}
		m.results = msg.page.Results
		m.message = msg.page.Message
		m.exactMatches = msg.page.ExactMatches
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
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m searchModel) updateKeys(msg tea.KeyMsg) (searchModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		return m, func() tea.Msg { return goBackMsg{} }

	case key.Matches(msg, keys.Mode):
		if m.mode == modeSemantic {
			m.mode = modeHybrid
		} else {
			m.mode = modeSemantic
		}
		return m.resubmit()

	case key.Matches(msg, keys.Genre):
		if m.mode != modeHybrid || len(m.genres) == 0 {
			return m, nil
		}
		m.genreIdx = (m.genreIdx + 1) % (len(m.genres) + 1)
		return m.resubmit()
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, keys.Enter):
			query := strings.TrimSpace(m.input.Value())
			if len(query) < 3 {
				m.errText = "Type at least 3 characters."
				return m, nil
			}
			return m.submit(query)

		case key.Matches(msg, keys.Down):
			if len(m.results) > 0 {
				m.input.Blur()
				m.focusResults = true
				m.sel = 0
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Search):
		m.focusResults = false
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Reload):
		return m.resubmit()

	case key.Matches(msg, keys.Up):
		if m.sel > 0 {
			m.sel--
		} else {
			m.focusResults = false
			m.input.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.Down):
		if m.sel < len(m.results)-1 {
			m.sel++
		}
	case key.Matches(msg, keys.Enter):
		if m.sel >= 0 && m.sel < len(m.results) {
			id := m.results[m.sel].ID
			return m, func() tea.Msg { return openDetailMsg{id: id} }
		}
	}
	return m, nil
}

func (m *searchModel) setSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 8
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	m.input.Width = w
}

func (m searchModel) view() string {
	var b strings.Builder

	b.WriteString(m.modeTabs())
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.mode == modeHybrid && len(m.genres) > 0 {
		b.WriteString(hintStyle.Render(" genre filter (ctrl+g): "))
		b.WriteString(indicatorStyle.Render(m.genreLabel()))
		b.WriteString("\n")
	}
	if m.stats != nil {
		b.WriteString(summaryStyle.Render(" " + m.statsLine()))
		b.WriteString("\n")
	}

	switch {
	case m.errText != "":
		b.WriteString("\n " + errorStyle.Render(m.errText))
	case m.loading:
		b.WriteString("\n " + m.spinner.View() + " " + hintStyle.Render("Searching..."))
	case m.searched:
		b.WriteString("\n")
		b.WriteString(m.resultsView())
	default:
		b.WriteString("\n " + hintStyle.Render("tab switches semantic/hybrid · enter searches"))
	}

	return b.String()
}

func (m searchModel) modeTabs() string {
	semantic := inactiveTabStyle.Render("semantic")
	hybrid := inactiveTabStyle.Render("hybrid")
	if m.mode == modeSemantic {
		semantic = activeTabStyle.Render("semantic")
	} else {
		hybrid = activeTabStyle.Render("hybrid")
	}
	return semantic + hybrid
}

func (m searchModel) genreLabel() string {
	if filter := m.genreFilter(); filter != nil {
		return *filter
	}
	return "all"
}

func (m searchModel) statsLine() string {
	s := m.stats
	return fmt.Sprintf("%d movies · ratings %.1f–%.1f · runtime %d–%dm",
		s.TotalMovies, s.MinRating, s.MaxRating, s.MinRuntime, s.MaxRuntime)
}

func (m searchModel) resultsView() string {
	var b strings.Builder

	if m.message != "" && !m.exactMatches {
		b.WriteString(messageStyle.Render(" " + m.message))
		b.WriteString("\n")
	}
	if len(m.results) == 0 {
		if m.message == "" {
			b.WriteString(hintStyle.Render(" nothing matched"))
		}
		return b.String()
	}

	for i, movie := range m.results {
		b.WriteString(view.Row(movie, m.width-2, m.focusResults && i == m.sel))
		if i < len(m.results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
