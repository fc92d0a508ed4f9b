package view

// EdgeTolerance is the distance, in terminal cells, within which the
// viewport counts as resting against an edge.
const EdgeTolerance = 10

// Carousel is pure view-state for a horizontally scrollable row. It
// owns no data: only content width, viewport width, and offset, all in
// terminal cells. Edge indicators and the scroll step are derived on
// every call, never stored.
type Carousel struct {
	contentWidth  int
	viewportWidth int
	offset        int
}

// SetViewportWidth records the visible width and re-clamps the offset.
func (c *Carousel) SetViewportWidth(width int) {
	if width < 0 {
		width = 0
	}
	c.viewportWidth = width
	c.clamp()
}

// SetContentWidth records the full row width and re-clamps the offset.
func (c *Carousel) SetContentWidth(width int) {
	if width < 0 {
		width = 0
	}
	c.contentWidth = width
	c.clamp()
}

// Reset returns to the left edge; called whenever the underlying list
// changes identity.
func (c *Carousel) Reset() {
	c.offset = 0
}

func (c *Carousel) Offset() int {
	return c.offset
}

func (c *Carousel) maxOffset() int {
	max := c.contentWidth - c.viewportWidth
	if max < 0 {
		return 0
	}
	return max
}

// step is 80% of the visible width.
func (c *Carousel) step() int {
	return c.viewportWidth * 4 / 5
}

// ScrollLeft moves one step toward the start, clamping at the edge.
func (c *Carousel) ScrollLeft() {
	c.offset -= c.step()
	c.clamp()
}

// ScrollRight moves one step toward the end, clamping at the edge.
func (c *Carousel) ScrollRight() {
	c.offset += c.step()
	c.clamp()
}

func (c *Carousel) clamp() {
	if c.offset > c.maxOffset() {
		c.offset = c.maxOffset()
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

// CanScrollLeft reports whether the viewport sits more than the edge
// tolerance away from the start; the left indicator shows exactly then.
func (c *Carousel) CanScrollLeft() bool {
	return c.offset > EdgeTolerance
}

// CanScrollRight reports whether the viewport sits more than the edge
// tolerance away from the end; the right indicator shows exactly then.
func (c *Carousel) CanScrollRight() bool {
	return c.offset < c.maxOffset()-EdgeTolerance
}

// EnsureVisible nudges the offset the minimal amount so the cell span
// [start, end) is inside the viewport.
func (c *Carousel) EnsureVisible(start, end int) {
	if start < c.offset {
		c.offset = start
	} else if end > c.offset+c.viewportWidth {
		c.offset = end - c.viewportWidth
	}
	c.clamp()
}

// VisibleRange returns the half-open index window of itemWidth-wide
// items touching the viewport at the current offset. The window may
// include a partially visible item at either edge; callers clip the
// rendered row to the viewport.
func (c *Carousel) VisibleRange(itemWidth, count int) (start, end int) {
	if itemWidth <= 0 || count <= 0 {
		return 0, 0
	}

	start = c.offset / itemWidth
	if start >= count {
		return count, count
	}

	end = (c.offset + c.viewportWidth + itemWidth - 1) / itemWidth
	if end > count {
		end = count
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}
