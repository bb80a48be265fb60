package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},  // Inside
		{10, 10, true},  // Top-left corner (inclusive)
		{29, 29, true},  // Just inside bottom-right
		{30, 30, false}, // Bottom-right corner (exclusive)
		{5, 15, false},  // Left of rect
		{35, 15, false}, // Right of rect
		{15, 5, false},  // Above rect
		{15, 35, false}, // Below rect
	}

	for _, tt := range tests {
		result := r.Contains(tt.x, tt.y)
		if result != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, result, tt.expected)
		}
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		outerW, outerH int
		w, h           int
		expected       Rect
	}{
		{"fits", 80, 24, 20, 4, Rect{X: 30, Y: 10, W: 20, H: 4}},
		{"odd remainder", 11, 5, 4, 2, Rect{X: 3, Y: 1, W: 4, H: 2}},
		{"too small", 10, 3, 20, 5, Rect{X: 0, Y: 0, W: 20, H: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenteredRect(tt.outerW, tt.outerH, tt.w, tt.h)
			if got != tt.expected {
				t.Errorf("CenteredRect = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 10, 6).Inset(1)
	if r != (Rect{X: 3, Y: 4, W: 8, H: 4}) {
		t.Errorf("Inset(1) = %+v", r)
	}
	if got := NewRect(0, 0, 3, 3).Inset(2); got.W != 0 || got.H != 0 {
		t.Errorf("over-inset should collapse to zero size, got %+v", got)
	}
}
