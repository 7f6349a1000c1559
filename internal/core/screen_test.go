package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Colored {
				t.Fatalf("new screen should hold uncolored spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetColored(0, -1, 'A', Red)
	s.SetColored(0, 100, 'A', Red)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '●', Cyan)

	c := s.GetCell(1, 2)
	if !c.Colored || c.Color != Cyan || c.Rune != '●' {
		t.Errorf("GetCell(1, 2) = %+v, expected colored cyan ball", c)
	}

	s.Set(1, 2, 'x')
	if s.GetCell(1, 2).Colored {
		t.Error("Set should reset the cell color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', Green)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawText(2, 1, "PAUSED")
	if got := s.Row(1); got != "  PAUSED    " {
		t.Errorf("Row(1) = %q", got)
	}

	s.DrawText(9, 0, "clipped")
	if got := s.Row(0); got != "         cli" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")
	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')
	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("after Resize got %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should clear content")
	}
}

func TestScreenCellAt(t *testing.T) {
	s := NewScreen(81, 25)

	tests := []struct {
		name   string
		p      Vec2
		wx, wy int
	}{
		{"center", V2(0, 0), 40, 12},
		{"top-left", V2(-1, 1), 0, 0},
		{"bottom-right", V2(1, -1), 80, 24},
		{"paddle row", V2(0, -0.8), 40, 22},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := s.CellAt(tc.p)
			if x != tc.wx || y != tc.wy {
				t.Errorf("CellAt(%v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestScreenCellRectMinimumSize(t *testing.T) {
	s := NewScreen(20, 10)
	r := s.CellRect(Square(V2(0, 0), 0.001))
	if r.W < 1 || r.H < 1 {
		t.Errorf("CellRect should cover at least one cell, got %+v", r)
	}
}
