package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v, expected {1 1 8 4}", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(1)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset on tiny rect = %+v, expected zero size", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMin(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
}

func TestParseColor(t *testing.T) {
	for c, name := range colorNames {
		got, err := ParseColor(name)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", name, err)
		}
		if got != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", name, got, c)
		}
		if c.String() != name {
			t.Errorf("String() = %q, expected %q", c.String(), name)
		}
	}

	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestColorPalette(t *testing.T) {
	tests := []struct {
		color    Color
		index    int
		expected bool
	}{
		{ColorDefault, 0, false},
		{ColorRed, 1, true},
		{ColorBrightRed, 9, true},
		{ColorBrightYellow, 11, true},
		{ColorOrange, 208, true},
		{ColorGray, 245, true},
		{Color(200), 0, false},
	}

	for _, tc := range tests {
		i, ok := tc.color.Palette()
		if ok != tc.expected || i != tc.index {
			t.Errorf("%v.Palette() = %d, %v, expected %d, %v", tc.color, i, ok, tc.index, tc.expected)
		}
	}
}
