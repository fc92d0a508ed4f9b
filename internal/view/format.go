// Package view renders movies as cards and detail blocks, and owns the
// display formatting rules for optional attributes.
package view

import (
	"fmt"
	"math"
	"strings"
)

// Missing is the placeholder for absent optional values on the detail
// page. Cards omit such lines instead.
const Missing = "N/A"

// FormatRating renders a rating to one decimal with arithmetic
// rounding, so 8.95 displays as "9.0" rather than "8.9".
func FormatRating(rating *float64) string {
	if rating == nil {
		return Missing
	}
	return fmt.Sprintf("%.1f", math.Round(*rating*10)/10)
}

// FormatRuntime renders minutes as "2h 5m", staying in minutes under an
// hour ("45m"). Missing or zero runtime renders as "N/A".
func FormatRuntime(runtime *int) string {
	if runtime == nil || *runtime <= 0 {
		return Missing
	}

	hours := *runtime / 60
	minutes := *runtime % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// FormatMetascore renders the critic aggregate as an integer.
func FormatMetascore(metascore *float64) string {
	if metascore == nil {
		return Missing
	}
	return fmt.Sprintf("%.0f", *metascore)
}

// FormatSimilarity renders a 0..1 similarity score as a match percent.
func FormatSimilarity(score *float64) string {
	if score == nil {
		return ""
	}
	return fmt.Sprintf("%d%% match", int(math.Round(*score*100)))
}

// FormatOptional substitutes the placeholder for absent strings.
func FormatOptional(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return Missing
	}
	return *value
}

// Truncate cuts a string to max cells, ellipsizing when it was longer.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
