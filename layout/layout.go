// Package layout tracks the vertical write position and page index while a
// document is composed, and decides when pending content forces a page break.
//
// A Cursor is created per generation and threaded through every section
// renderer; it is the only mutable layout state and is never shared between
// concurrent generations.
package layout

// Geometry describes the fixed page frame layout decisions are made against.
// All values share the unit of the underlying PDF document.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64 // uniform margin on all four sides

	// FooterReserve is kept free at the bottom of every page so the footer
	// variant chosen after layout always has room.
	FooterReserve float64
}

// ContentWidth returns the horizontal space available to content.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Limit returns the lowest vertical position content may extend to.
func (g Geometry) Limit() float64 {
	return g.PageHeight - g.Margin - g.FooterReserve
}

// Cursor is the layout state of an in-progress document: the current
// vertical position and the current one-based page index.
type Cursor struct {
	geom Geometry
	y    float64
	page int
}

// NewCursor returns a cursor positioned at the top margin of page 1.
func NewCursor(g Geometry) *Cursor {
	return &Cursor{geom: g, y: g.Margin, page: 1}
}

// Geometry returns the page frame the cursor was created with.
func (c *Cursor) Geometry() Geometry { return c.geom }

// Y returns the current vertical position.
func (c *Cursor) Y() float64 { return c.y }

// Page returns the current one-based page index.
func (c *Cursor) Page() int { return c.page }

// Fits reports whether a block of the given height fits in the space
// remaining on the current page.
func (c *Cursor) Fits(h float64) bool {
	return c.y+h <= c.geom.Limit()
}

// Remaining returns the vertical space left on the current page.
func (c *Cursor) Remaining() float64 {
	return c.geom.Limit() - c.y
}

// Advance moves the cursor down by h.
func (c *Cursor) Advance(h float64) {
	c.y += h
}

// MoveTo places the cursor at an absolute vertical position.
func (c *Cursor) MoveTo(y float64) {
	c.y = y
}

// NewPage advances to the next page and resets the cursor to the top margin.
func (c *Cursor) NewPage() {
	c.page++
	c.y = c.geom.Margin
}
