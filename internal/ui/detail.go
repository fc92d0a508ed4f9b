package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flickdeck/internal/flicks"
	"flickdeck/internal/view"
)

type detailResultMsg struct {
	token uuid.UUID
	movie *flicks.Movie
	err   error
}

type detailModel struct {
	client flicks.Service
	log    *zap.Logger

	id       int
	movie    *flicks.Movie
	notFound bool

	loading  bool
	token    uuid.UUID
	spinner  spinner.Model
	viewport viewport.Model

	width  int
	height int
}

func newDetailModel(client flicks.Service, log *zap.Logger, id int, width, height int) detailModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	vp := viewport.New(width, maxInt(height-1, 1))

	return detailModel{
		client:   client,
		log:      log.With(zap.String("page", "detail")),
		id:       id,
		loading:  true,
		token:    uuid.New(),
		spinner:  sp,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

func (m detailModel) init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m detailModel) reload() (detailModel, tea.Cmd) {
	m.token = uuid.New()
	m.loading = true
	m.notFound = false
	m.movie = nil
	return m, tea.Batch(m.spinner.Tick, m.fetch())
}

func (m detailModel) fetch() tea.Cmd {
	client := m.client
	token := m.token
	id := m.id

	return func() tea.Msg {
		movie, err := client.MovieByID(context.Background(), id)
		return detailResultMsg{token: token, movie: movie, err: err}
	}
}

func (m detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case detailResultMsg:
		if msg.token != m.token {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// Network trouble and a genuine 404 look the same here;
			// the log line keeps the distinction.
			m.notFound = true
			m.log.Warn("movie detail unavailable",
				zap.Int("movie_id", m.id),
				zap.String("reason", string(flicks.ReasonOf(msg.err))),
				zap.Error(msg.err))
			return m, nil
		}
		m.movie = msg.movie
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
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
		}
		if m.movie != nil {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m *detailModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = maxInt(height-1, 1)
	if m.movie != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

func (m detailModel) view() string {
	if m.loading {
		return loadingView(m.spinner, "Loading movie...")
	}
	if m.notFound {
		return "\n " + errorStyle.Render("Movie not found.") +
			"\n " + hintStyle.Render("press esc to go back, r to retry")
	}
	return m.viewport.View() + "\n" + hintStyle.Render(" ↑/↓ scroll · esc back")
}

func (m detailModel) renderContent() string {
	movie := m.movie
	if movie == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(detailTitleStyle.Render(movie.Name))
	b.WriteString("\n")
	b.WriteString(indicatorStyle.Render("★ " + view.FormatRating(movie.Rating)))
	b.WriteString(hintStyle.Render("  metascore " + view.FormatMetascore(movie.Metascore)))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(detailLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	field("Runtime", view.FormatRuntime(movie.Runtime))
	field("Genres", strings.Join(movie.GenreNames(), " · "))
	field("Directors", view.FormatOptional(movie.Directors))
	field("Stars", view.FormatOptional(movie.Stars))
	field("Votes", view.FormatOptional(movie.Votes))
	field("Gross", view.FormatOptional(movie.Gross))

	if movie.PosterURL != nil && *movie.PosterURL != "" {
		field("Poster", *movie.PosterURL)
	} else {
		field("Poster", hintStyle.Render("poster unavailable"))
	}

	if movie.Plot != nil && *movie.Plot != "" {
		b.WriteString("\n")
		plotWidth := m.width - 2
		if plotWidth < 20 {
			plotWidth = 20
		}
		b.WriteString(lipgloss.NewStyle().Width(plotWidth).Render(*movie.Plot))
		b.WriteString("\n")
	}

	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
