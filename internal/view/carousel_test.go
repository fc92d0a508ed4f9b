package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCarousel(content, viewport int) Carousel {
	var c Carousel
	c.SetContentWidth(content)
	c.SetViewportWidth(viewport)
	return c
}

func TestCarouselEdgeTolerance(t *testing.T) {
	c := newCarousel(500, 100) // maxOffset 400

	assert.False(t, c.CanScrollLeft(), "at the start")
	assert.True(t, c.CanScrollRight())

	c.offset = EdgeTolerance
	assert.False(t, c.CanScrollLeft(), "exactly at tolerance still counts as the edge")

	c.offset = EdgeTolerance + 1
	assert.True(t, c.CanScrollLeft())

	c.offset = 400 - EdgeTolerance
	assert.False(t, c.CanScrollRight(), "within tolerance of the end")

	c.offset = 400 - EdgeTolerance - 1
	assert.True(t, c.CanScrollRight())
}

func TestCarouselStepIsEightyPercent(t *testing.T) {
	c := newCarousel(500, 100)

	c.ScrollRight()
	assert.Equal(t, 80, c.Offset())

	c.ScrollRight()
	assert.Equal(t, 160, c.Offset())

	c.ScrollLeft()
	assert.Equal(t, 80, c.Offset())
}

func TestCarouselClampsAtEdges(t *testing.T) {
	c := newCarousel(250, 100) // maxOffset 150

	c.ScrollLeft()
	assert.Equal(t, 0, c.Offset(), "cannot scroll before the start")

	c.ScrollRight()
	c.ScrollRight()
	c.ScrollRight()
	assert.Equal(t, 150, c.Offset(), "clamped at maxOffset")

	// Content narrower than the viewport never scrolls.
	c = newCarousel(50, 100)
	c.ScrollRight()
	assert.Equal(t, 0, c.Offset())
	assert.False(t, c.CanScrollLeft())
	assert.False(t, c.CanScrollRight())
}

func TestCarouselShrinkingContentReclamps(t *testing.T) {
	c := newCarousel(500, 100)
	c.ScrollRight()
	c.ScrollRight()
	assert.Equal(t, 160, c.Offset())

	c.SetContentWidth(200) // maxOffset now 100
	assert.Equal(t, 100, c.Offset())

	c.Reset()
	assert.Equal(t, 0, c.Offset())
}

func TestCarouselEnsureVisible(t *testing.T) {
	c := newCarousel(500, 100)

	// Selection beyond the right edge pulls the viewport forward just
	// far enough.
	c.EnsureVisible(260, 286)
	assert.Equal(t, 186, c.Offset())

	// Selection before the left edge snaps back to its start.
	c.EnsureVisible(0, 26)
	assert.Equal(t, 0, c.Offset())

	// Already visible spans do not move the viewport.
	c.EnsureVisible(26, 52)
	assert.Equal(t, 0, c.Offset())
}

func TestCarouselVisibleRange(t *testing.T) {
	c := newCarousel(15*CardWidth, 100)

	start, end := c.VisibleRange(CardWidth, 15)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end, "three full cards plus the partial fourth")

	c.offset = 2 * CardWidth
	start, end = c.VisibleRange(CardWidth, 15)
	assert.Equal(t, 2, start)
	assert.Equal(t, 6, end)

	// Ensuring the last card is visible must put it inside the window.
	c.EnsureVisible(14*CardWidth, 15*CardWidth)
	start, end = c.VisibleRange(CardWidth, 15)
	assert.Equal(t, 15, end, "selection at the end stays rendered")
	assert.LessOrEqual(t, start, 14)

	start, end = c.VisibleRange(CardWidth, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
