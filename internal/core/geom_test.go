package core

import "testing"

func TestBoxContainsStrict(t *testing.T) {
	b := Square(V2(0.5, -0.33), 0.2)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", V2(0.5, -0.33), true},
		{"inside near corner", V2(0.41, -0.24), true},
		{"on left edge", V2(0.4, -0.33), false},
		{"on top edge", V2(0.5, -0.23), false},
		{"outside right", V2(0.61, -0.33), false},
		{"outside below", V2(0.5, -0.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.ContainsStrict(tc.p); got != tc.expected {
				t.Errorf("ContainsStrict(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := BoxAt(V2(0, -0.8), 0.3, 0.05)

	const eps = 1e-9
	checks := []struct {
		name      string
		got, want float64
	}{
		{"Left", b.Left(), -0.15},
		{"Right", b.Right(), 0.15},
		{"Bottom", b.Bottom(), -0.825},
		{"Top", b.Top(), -0.775},
	}
	for _, c := range checks {
		if d := c.got - c.want; d > eps || d < -eps {
			t.Errorf("%s() = %f, expected %f", c.name, c.got, c.want)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	v := V2(0.1, -0.2).Add(V2(0.2, 0.2)).Scale(2)
	if v.X < 0.6-1e-9 || v.X > 0.6+1e-9 || v.Y != 0 {
		t.Errorf("got %v, expected {0.6 0}", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.5, -0.85, 0.85, 0.5},
		{-1.2, -0.85, 0.85, -0.85},
		{0.9, -0.85, 0.85, 0.85},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c        RGB
		expected string
	}{
		{White, "#ffffff"},
		{Yellow, "#ffff00"},
		{RGB{R: 0.5, G: 0, B: 2}, "#8000ff"},
		{RGB{R: -1}, "#000000"},
	}
	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("%v.Hex() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
