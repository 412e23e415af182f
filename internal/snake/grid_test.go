package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGridBlankLayout(t *testing.T) {
	g := NewGrid(3, 2)
	expected := strings.Join([]string{
		"+-------+",
		"|       |",
		"|       |",
		"+-------+",
		"",
	}, "\n")

	if got := string(g.Blank()); got != expected {
		t.Errorf("Blank() =\n%s\nexpected\n%s", got, expected)
	}
	if len(g.Blank()) != g.Size() {
		t.Errorf("len(Blank()) = %d, expected Size() = %d", len(g.Blank()), g.Size())
	}
}

func TestGridSizeDefault(t *testing.T) {
	g := NewGrid(30, 30)
	if g.Stride() != 64 {
		t.Errorf("Stride() = %d, expected 64", g.Stride())
	}
	if g.Size() != 64*32 {
		t.Errorf("Size() = %d, expected %d", g.Size(), 64*32)
	}
}

func TestGridIndexLandsOnInteriorCells(t *testing.T) {
	g := NewGrid(5, 4)
	buf := g.Blank()

	seen := make(map[int]bool)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(core.Point{X: x, Y: y})
			if seen[i] {
				t.Fatalf("Index(%d, %d) = %d collides with another cell", x, y, i)
			}
			seen[i] = true

			// The cell and both joints next to it are interior blanks.
			for _, off := range []int{i - 1, i, i + 1} {
				if buf[off] != ' ' {
					t.Errorf("Offset %d around cell (%d, %d) is %q, expected interior space", off, x, y, buf[off])
				}
			}
		}
	}
}

func TestGridIndexFormula(t *testing.T) {
	g := NewGrid(30, 30)
	tests := []struct {
		p        core.Point
		expected int
	}{
		{core.Point{X: 0, Y: 0}, 64 + 2},
		{core.Point{X: 29, Y: 0}, 64 + 60},
		{core.Point{X: 15, Y: 15}, 64*16 + 32},
		{core.Point{X: 29, Y: 29}, 64*30 + 60},
	}
	for _, tc := range tests {
		if got := g.Index(tc.p); got != tc.expected {
			t.Errorf("Index(%v) = %d, expected %d", tc.p, got, tc.expected)
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(30, 20)
	tests := []struct {
		in, expected core.Point
	}{
		{core.Point{X: 30, Y: 5}, core.Point{X: 0, Y: 5}},
		{core.Point{X: -1, Y: 5}, core.Point{X: 29, Y: 5}},
		{core.Point{X: 5, Y: 20}, core.Point{X: 5, Y: 0}},
		{core.Point{X: 5, Y: -1}, core.Point{X: 5, Y: 19}},
		{core.Point{X: 7, Y: 8}, core.Point{X: 7, Y: 8}},
	}
	for _, tc := range tests {
		if got := g.Wrap(tc.in); got != tc.expected {
			t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
