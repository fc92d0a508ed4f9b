package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{"empty", 0, 20, 0},
		{"single movie", 1, 20, 1},
		{"exact pages", 40, 20, 2},
		{"remainder adds a page", 41, 20, 3},
		{"one short of a page", 19, 20, 1},
		{"zero per page", 10, 0, 0},
		{"negative total", -5, 20, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, TotalPages(c.total, c.perPage))
		})
	}
}

func TestSkipFor(t *testing.T) {
	assert.Equal(t, 0, SkipFor(0, 20))
	assert.Equal(t, 20, SkipFor(1, 20))
	assert.Equal(t, 100, SkipFor(5, 20))
	assert.Equal(t, 0, SkipFor(-3, 20))
}
