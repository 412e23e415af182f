package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Grid maps logical cells to offsets in the flat field buffer.
//
// The buffer is H+2 rows of 2W+4 bytes: a border row "+---+\n", H interior
// rows "|...|\n" and a closing border row. Every cell is two characters wide;
// cell (x, y) sits on an even interior column and the odd columns between
// cells hold joints, which the renderer patches to draw continuous lines.
type Grid struct {
	W, H int
}

// NewGrid creates a grid for a w×h playing field.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// Stride returns the length of one buffer row including its newline.
func (g Grid) Stride() int {
	return 2*g.W + 4
}

// Size returns the total buffer length.
func (g Grid) Size() int {
	return g.Stride() * (g.H + 2)
}

// Index returns the buffer offset of cell p. p must be inside the field.
func (g Grid) Index(p core.Point) int {
	return g.Stride()*(p.Y+1) + 2*p.X + 2
}

// RowStart returns the offset of the left border of interior row y.
func (g Grid) RowStart(y int) int {
	return g.Stride() * (y + 1)
}

// Contains reports whether p is a playable cell.
func (g Grid) Contains(p core.Point) bool {
	return p.In(g.W, g.H)
}

// Wrap folds a point that stepped one cell past an edge back to the
// opposite edge, each axis independently.
func (g Grid) Wrap(p core.Point) core.Point {
	switch {
	case p.X >= g.W:
		p.X = 0
	case p.X < 0:
		p.X = g.W - 1
	}
	switch {
	case p.Y >= g.H:
		p.Y = 0
	case p.Y < 0:
		p.Y = g.H - 1
	}
	return p
}

// Blank returns a new buffer holding the border and an empty interior.
func (g Grid) Blank() []byte {
	buf := make([]byte, 0, g.Size())
	inner := 2*g.W + 1

	border := func() {
		buf = append(buf, '+')
		for range inner {
			buf = append(buf, '-')
		}
		buf = append(buf, '+', '\n')
	}

	border()
	for range g.H {
		buf = append(buf, '|')
		for range inner {
			buf = append(buf, ' ')
		}
		buf = append(buf, '|', '\n')
	}
	border()
	return buf
}
