package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// RenderOptions controls the parts of a frame that do not come from the
// simulation state.
type RenderOptions struct {
	PortalWalls bool // patch the joint next to a head that just wrapped
	Debug       bool // draw a dotted crosshair through the head
}

// Render draws the field into a new buffer laid out by g. It never mutates
// the body, so the same inputs always produce the same bytes.
func Render(g Grid, b Body, fruit core.Point, opts RenderOptions) []byte {
	buf := g.Blank()

	if opts.Debug {
		drawCrosshair(g, buf, b.Head)
	}

	buf[g.Index(fruit)] = 'F'

	if n := len(b.Tail); n > 0 {
		first := b.Tail[0]
		p := g.Index(first.Pos)
		buf[p] = first.Glyph
		// A straight segment right behind the head only links up when the
		// head did not leave its column.
		if first.Glyph == GlyphHorizontal && first.Pos.X != b.Head.X {
			buf[p-1] = GlyphHorizontal
			buf[p+1] = GlyphHorizontal
		}

		if opts.PortalWalls {
			hp := g.Index(b.Head)
			switch {
			case b.Heading == HeadingLeft && b.Head.X == g.W-1:
				buf[hp+1] = GlyphHorizontal
			case b.Heading == HeadingRight && b.Head.X == 0:
				buf[hp-1] = GlyphHorizontal
			}
		}

		for i := 1; i < n-1; i++ {
			s := b.Tail[i]
			p := g.Index(s.Pos)
			buf[p] = s.Glyph
			if s.Glyph == GlyphHorizontal {
				buf[p-1] = GlyphHorizontal
				buf[p+1] = GlyphHorizontal
			}
		}

		if n > 1 {
			last, prev := b.Tail[n-1], b.Tail[n-2]
			p := g.Index(last.Pos)
			buf[p] = last.Glyph
			// The tail end only reaches toward the segment it follows.
			if last.Glyph == GlyphHorizontal {
				switch {
				case last.Pos.X == g.W-1 || last.Pos.X < prev.Pos.X:
					buf[p+1] = GlyphHorizontal
				case last.Pos.X == 0 || last.Pos.X > prev.Pos.X:
					buf[p-1] = GlyphHorizontal
				}
			}
		}
	}

	buf[g.Index(b.Head)] = b.Heading.HeadGlyph()

	fp := g.Index(fruit)
	buf[fp-1] = '['
	buf[fp+1] = ']'

	return buf
}

// drawCrosshair dots the head's row and the head's column.
func drawCrosshair(g Grid, buf []byte, head core.Point) {
	inner := 2*g.W + 1
	col := 2*head.X + 2
	for y := range g.H {
		rs := g.RowStart(y)
		if y == head.Y {
			for j := 1; j <= inner; j++ {
				buf[rs+j] = '.'
			}
			continue
		}
		buf[rs+col] = '.'
	}
}
