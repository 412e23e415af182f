package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestHeadingOpposite(t *testing.T) {
	pairs := [][2]Heading{
		{HeadingLeft, HeadingRight},
		{HeadingUp, HeadingDown},
	}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%s and %s should be opposites", p[0], p[1])
		}
	}
	if HeadingNone.Opposite() != HeadingNone {
		t.Error("HeadingNone should have no opposite")
	}
}

func TestTurnRejectsReversalWithTail(t *testing.T) {
	b := Body{}
	b.Reset(core.Point{X: 5, Y: 5})
	b.Heading = HeadingRight
	b.Tail = []Segment{{Pos: core.Point{X: 4, Y: 5}, Glyph: GlyphHorizontal}}

	if b.Turn(HeadingLeft) {
		t.Error("Turn(Left) while heading Right with a tail should be rejected")
	}
	if b.Heading != HeadingRight {
		t.Errorf("Heading = %s, expected right", b.Heading)
	}

	if !b.Turn(HeadingUp) {
		t.Error("Turn(Up) while heading Right should be accepted")
	}
}

func TestTurnAllowsReversalWithoutTail(t *testing.T) {
	b := Body{}
	b.Reset(core.Point{X: 5, Y: 5})
	b.Heading = HeadingRight

	if !b.Turn(HeadingLeft) {
		t.Error("Turn(Left) without a tail should be accepted")
	}
	if b.Heading != HeadingLeft {
		t.Errorf("Heading = %s, expected left", b.Heading)
	}
}

func TestJointGlyph(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur Heading
		expected  byte
	}{
		{"straight horizontal", HeadingLeft, HeadingLeft, GlyphHorizontal},
		{"straight vertical", HeadingDown, HeadingDown, GlyphVertical},
		{"turn", HeadingUp, HeadingRight, GlyphCorner},
		{"standing still", HeadingNone, HeadingNone, GlyphCorner},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{Heading: tc.cur, prevHeading: tc.prev}
			if got := b.JointGlyph(); got != tc.expected {
				t.Errorf("JointGlyph() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestShiftTail(t *testing.T) {
	b := Body{Head: core.Point{X: 3, Y: 1}, Heading: HeadingRight, prevHeading: HeadingRight}
	b.Tail = []Segment{
		{Pos: core.Point{X: 2, Y: 1}, Glyph: GlyphHorizontal},
		{Pos: core.Point{X: 1, Y: 1}, Glyph: GlyphCorner},
		{Pos: core.Point{X: 1, Y: 2}, Glyph: GlyphVertical},
	}

	if !b.ShiftTail() {
		t.Fatal("ShiftTail() reported a collision on a straight snake")
	}

	expected := []Segment{
		{Pos: core.Point{X: 3, Y: 1}, Glyph: GlyphHorizontal},
		{Pos: core.Point{X: 2, Y: 1}, Glyph: GlyphHorizontal},
		{Pos: core.Point{X: 1, Y: 1}, Glyph: GlyphCorner},
	}
	for i, s := range expected {
		if b.Tail[i] != s {
			t.Errorf("Tail[%d] = %+v, expected %+v", i, b.Tail[i], s)
		}
	}
}

func TestGrowDuplicatesLastSegment(t *testing.T) {
	b := Body{Head: core.Point{X: 4, Y: 4}, Heading: HeadingUp, prevHeading: HeadingLeft}

	b.Grow()
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", b.Len())
	}
	if b.Tail[0] != (Segment{Pos: core.Point{X: 4, Y: 4}, Glyph: GlyphCorner}) {
		t.Errorf("First segment = %+v, expected corner on the head cell", b.Tail[0])
	}

	b.Tail[0] = Segment{Pos: core.Point{X: 4, Y: 5}, Glyph: GlyphVertical}
	b.Grow()
	if b.Len() != 2 || b.Tail[1] != b.Tail[0] {
		t.Errorf("Second segment = %+v, expected copy of %+v", b.Tail[1], b.Tail[0])
	}
}

func TestAdvanceHead(t *testing.T) {
	tests := []struct {
		h        Heading
		expected core.Point
	}{
		{HeadingLeft, core.Point{X: 4, Y: 5}},
		{HeadingRight, core.Point{X: 6, Y: 5}},
		{HeadingUp, core.Point{X: 5, Y: 4}},
		{HeadingDown, core.Point{X: 5, Y: 6}},
		{HeadingNone, core.Point{X: 5, Y: 5}},
	}
	for _, tc := range tests {
		b := Body{Head: core.Point{X: 5, Y: 5}, Heading: tc.h}
		b.AdvanceHead()
		if b.Head != tc.expected {
			t.Errorf("AdvanceHead() heading %s = %v, expected %v", tc.h, b.Head, tc.expected)
		}
	}
}
