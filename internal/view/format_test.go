package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatp(f float64) *float64 { return &f }
func intp(i int) *int           { return &i }
func strp(s string) *string     { return &s }

func TestFormatRating(t *testing.T) {
	cases := []struct {
		name   string
		rating *float64
		want   string
	}{
		{"rounds half up", floatp(8.95), "9.0"},
		{"rounds down", floatp(8.94), "8.9"},
		{"whole number", floatp(7.0), "7.0"},
		{"top of scale", floatp(10.0), "10.0"},
		{"missing", nil, "N/A"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FormatRating(c.rating))
		})
	}
}

func TestFormatRuntime(t *testing.T) {
	cases := []struct {
		name    string
		runtime *int
		want    string
	}{
		{"hours and minutes", intp(125), "2h 5m"},
		{"under an hour", intp(45), "45m"},
		{"exact hours", intp(120), "2h"},
		{"one minute", intp(1), "1m"},
		{"zero", intp(0), "N/A"},
		{"missing", nil, "N/A"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FormatRuntime(c.runtime))
		})
	}
}

func TestFormatMetascore(t *testing.T) {
	assert.Equal(t, "74", FormatMetascore(floatp(74)))
	assert.Equal(t, "100", FormatMetascore(floatp(100)))
	assert.Equal(t, "N/A", FormatMetascore(nil))
}

func TestFormatSimilarity(t *testing.T) {
	assert.Equal(t, "87% match", FormatSimilarity(floatp(0.87)))
	assert.Equal(t, "100% match", FormatSimilarity(floatp(1.0)))
	assert.Equal(t, "", FormatSimilarity(nil))
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "Ridley Scott", FormatOptional(strp("Ridley Scott")))
	assert.Equal(t, "N/A", FormatOptional(strp("   ")))
	assert.Equal(t, "N/A", FormatOptional(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "long titl…", Truncate("long title here", 10))
	assert.Equal(t, "…", Truncate("ab", 1))
	assert.Equal(t, "", Truncate("ab", 0))
}

// FuzzFormatRuntime checks that every positive runtime round-trips
// through its display form and that the minute part never overflows an
// hour.
func FuzzFormatRuntime(f *testing.F) {
	f.Add(125)
	f.Add(45)
	f.Add(60)
	f.Add(0)
	f.Add(-30)

	f.Fuzz(func(t *testing.T, minutes int) {
		got := FormatRuntime(&minutes)

		if minutes <= 0 {
			if got != Missing {
				t.Fatalf("FormatRuntime(%d) = %q, want %q", minutes, got, Missing)
			}
			return
		}

		var h, m int
		switch {
		case strings.Contains(got, "h") && strings.Contains(got, "m"):
			if _, err := fmt.Sscanf(got, "%dh %dm", &h, &m); err != nil {
				t.Fatalf("cannot parse %q: %v", got, err)
			}
		case strings.Contains(got, "h"):
			if _, err := fmt.Sscanf(got, "%dh", &h); err != nil {
				t.Fatalf("cannot parse %q: %v", got, err)
			}
		default:
			if _, err := fmt.Sscanf(got, "%dm", &m); err != nil {
				t.Fatalf("cannot parse %q: %v", got, err)
			}
		}

		if m >= 60 {
			t.Fatalf("minute part of %q overflows an hour", got)
		}
		if h*60+m != minutes {
			t.Fatalf("FormatRuntime(%d) = %q, round-trips to %d", minutes, got, h*60+m)
		}
	})
}
