package ui

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"disjoint", Rect{0, 0, 5, 5}, Rect{10, 10, 5, 5}, false},
		{"touching edges", Rect{0, 0, 5, 5}, Rect{5, 0, 5, 5}, false},
		{"contained", Rect{0, 0, 20, 20}, Rect{5, 5, 2, 2}, true},
		{"zero area", Rect{0, 0, 0, 0}, Rect{0, 0, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() not symmetric: = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClamp(t *testing.T) {
	bounds := Rect{0, 0, 100, 50}

	r := Rect{90, 45, 20, 10}.Clamp(bounds)
	if r.X+r.W > 100 || r.Y+r.H > 50 {
		t.Errorf("Clamp() did not fit bounds: %+v", r)
	}

	r = Rect{-5, -5, 10, 10}.Clamp(bounds)
	if r.X < 0 || r.Y < 0 {
		t.Errorf("Clamp() left negative origin: %+v", r)
	}
}
