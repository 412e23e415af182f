package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Heading is the snake's direction of travel.
type Heading int

const (
	HeadingNone Heading = iota // Not moving yet
	HeadingLeft
	HeadingUp
	HeadingRight
	HeadingDown
)

// Joint glyphs stored in tail segments.
const (
	GlyphCorner     byte = '+'
	GlyphHorizontal byte = '-'
	GlyphVertical   byte = '|'
)

// Opposite returns the reverse heading. HeadingNone has no opposite.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	default:
		return HeadingNone
	}
}

// Delta returns the per-tick movement vector.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Horizontal reports whether the heading moves along the x axis.
func (h Heading) Horizontal() bool {
	return h == HeadingLeft || h == HeadingRight
}

// Vertical reports whether the heading moves along the y axis.
func (h Heading) Vertical() bool {
	return h == HeadingUp || h == HeadingDown
}

// HeadGlyph returns the character drawn for the head.
func (h Heading) HeadGlyph() byte {
	switch h {
	case HeadingLeft:
		return '<'
	case HeadingUp:
		return '^'
	case HeadingRight:
		return '>'
	case HeadingDown:
		return 'v'
	default:
		return 'O'
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingNone:
		return "none"
	case HeadingLeft:
		return "left"
	case HeadingUp:
		return "up"
	case HeadingRight:
		return "right"
	case HeadingDown:
		return "down"
	default:
		return "unknown"
	}
}

// headingFor maps a movement action to a heading request.
func headingFor(a core.Action) Heading {
	switch a {
	case core.ActionLeft:
		return HeadingLeft
	case core.ActionUp:
		return HeadingUp
	case core.ActionRight:
		return HeadingRight
	case core.ActionDown:
		return HeadingDown
	default:
		return HeadingNone
	}
}

// Segment is one tail cell with the joint glyph it was laid down with.
type Segment struct {
	Pos   core.Point
	Glyph byte
}

// Body is the snake: the head position and heading plus the tail.
// Tail[0] is the segment right behind the head. Only the Engine mutates a
// Body; copies handed out for rendering are read-only.
type Body struct {
	Head    core.Point
	Heading Heading
	Tail    []Segment

	prevHeading Heading // heading at the start of the current tick
}

// Reset places a tail-less, motionless snake at head.
func (b *Body) Reset(head core.Point) {
	b.Head = head
	b.Heading = HeadingNone
	b.prevHeading = HeadingNone
	b.Tail = b.Tail[:0]
}

// Len returns the tail length.
func (b *Body) Len() int {
	return len(b.Tail)
}

// ClearTail drops every tail segment, keeping head and heading.
func (b *Body) ClearTail() {
	b.Tail = b.Tail[:0]
}

// Turn starts a tick: it remembers the current heading and applies req
// unless req is HeadingNone or a reversal into a non-empty tail.
// Returns whether the heading was replaced.
func (b *Body) Turn(req Heading) bool {
	b.prevHeading = b.Heading
	if req == HeadingNone {
		return false
	}
	if len(b.Tail) > 0 && req == b.Heading.Opposite() {
		return false
	}
	b.Heading = req
	return true
}

// Turned reports whether the heading changed this tick.
func (b *Body) Turned() bool {
	return b.prevHeading != b.Heading
}

// JointGlyph is the glyph for a segment laid down this tick: a straight line
// along the heading, or a corner when the snake turned or is not moving.
func (b *Body) JointGlyph() byte {
	if !b.Turned() {
		switch {
		case b.Heading.Horizontal():
			return GlyphHorizontal
		case b.Heading.Vertical():
			return GlyphVertical
		}
	}
	return GlyphCorner
}

// ShiftTail moves every segment into its predecessor's place and puts
// segment 0 on the current head cell. It returns false, leaving the shift
// incomplete, when a shifted segment lands on the head.
func (b *Body) ShiftTail() bool {
	n := len(b.Tail)
	if n == 0 {
		return true
	}
	for i := n - 1; i > 0; i-- {
		b.Tail[i] = b.Tail[i-1]
		if b.Tail[i].Pos == b.Head {
			return false
		}
	}
	b.Tail[0] = Segment{Pos: b.Head, Glyph: b.JointGlyph()}
	return true
}

// AdvanceHead moves the head one cell along the heading.
func (b *Body) AdvanceHead() {
	dx, dy := b.Heading.Delta()
	b.Head = b.Head.Add(dx, dy)
}

// Grow adds one segment. A new segment duplicates the last one so it
// unfolds on the next shift; the first segment starts on the head cell.
func (b *Body) Grow() {
	if n := len(b.Tail); n > 0 {
		b.Tail = append(b.Tail, b.Tail[n-1])
		return
	}
	b.Tail = append(b.Tail, Segment{Pos: b.Head, Glyph: b.JointGlyph()})
}

// Occupies reports whether the head or any tail segment is on p.
func (b *Body) Occupies(p core.Point) bool {
	if b.Head == p {
		return true
	}
	for _, s := range b.Tail {
		if s.Pos == p {
			return true
		}
	}
	return false
}

// clone returns a copy that does not share the tail's backing array.
func (b *Body) clone() Body {
	c := *b
	c.Tail = append([]Segment(nil), b.Tail...)
	return c
}
