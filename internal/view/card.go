package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flickdeck/internal/flicks"
)

// CardWidth is the outer width of a shelf card, border included.
const CardWidth = 26

// CardHeight is the rendered height of a card. Fixed so shelves stack
// evenly regardless of which optional lines a movie carries.
const CardHeight = 6

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(CardWidth - 2).
			Height(CardHeight - 2)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205"))

	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	ratingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	fadedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	rowStyle = lipgloss.NewStyle()

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(true)
)

// Card renders one movie as a bordered shelf card. Runtime is omitted
// entirely when missing; the detail page is where "N/A" appears.
func Card(movie flicks.Movie, selected bool) string {
	textWidth := CardWidth - 4

	lines := []string{
		cardTitleStyle.Render(Truncate(movie.Name, textWidth)),
		ratingStyle.Render("★ " + FormatRating(movie.Rating)),
	}

	if genres := movie.GenreNames(); len(genres) > 0 {
		lines = append(lines, fadedStyle.Render(Truncate(strings.Join(genres, " · "), textWidth)))
	}
	if movie.Runtime != nil && *movie.Runtime > 0 {
		lines = append(lines, fadedStyle.Render(FormatRuntime(movie.Runtime)))
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Row renders one movie as a single grid line for listing and search
// pages. Similarity shows only when the catalog scored the result.
func Row(movie flicks.Movie, width int, selected bool) string {
	const ratingWidth = 7
	const runtimeWidth = 8

	nameWidth := width / 3
	if nameWidth < 12 {
		nameWidth = 12
	}

	runtime := ""
	if movie.Runtime != nil && *movie.Runtime > 0 {
		runtime = FormatRuntime(movie.Runtime)
	}

	tail := strings.Join(movie.GenreNames(), " · ")
	if match := FormatSimilarity(movie.SimilarityScore); match != "" {
		tail = match + "  " + tail
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(nameWidth).Render(Truncate(movie.Name, nameWidth-1)),
		lipgloss.NewStyle().Width(ratingWidth).Render("★ "+FormatRating(movie.Rating)),
		lipgloss.NewStyle().Width(runtimeWidth).Render(runtime),
		Truncate(tail, width-nameWidth-ratingWidth-runtimeWidth),
	)

	if selected {
		return selectedRowStyle.Render(line)
	}
	return rowStyle.Render(line)
}
