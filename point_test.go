package colorpick

import (
	"math"
	"testing"
)

func TestSize_Clamp(t *testing.T) {
	s := Sz(100, 50)
	tests := []struct {
		in, want Point
	}{
		{Pt(10, 10), Pt(10, 10)},
		{Pt(-1, -1), Pt(0, 0)},
		{Pt(101, 51), Pt(100, 50)},
		{Pt(100, 0), Pt(100, 0)},
		{Pt(math.NaN(), 20), Pt(0, 20)},
		{Pt(math.Inf(1), math.Inf(-1)), Pt(100, 0)},
	}
	for _, tt := range tests {
		if got := s.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestSize_Empty(t *testing.T) {
	if !Sz(0, 10).Empty() || !Sz(10, -2).Empty() || Sz(1, 1).Empty() {
		t.Error("Empty() disagrees with area")
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	if !r.Contains(Pt(10, 10)) || !r.Contains(Pt(30, 20)) {
		t.Error("edges should be inside")
	}
	if r.Contains(Pt(9.9, 15)) || r.Contains(Pt(15, 20.1)) {
		t.Error("points past the edges should be outside")
	}
	if (Rect{W: 0, H: 10}).Contains(Pt(0, 0)) {
		t.Error("rect without area contains a point")
	}
}

func TestRatio(t *testing.T) {
	if got := ratio(5, 0); got != 0 {
		t.Errorf("ratio(5, 0) = %v, want 0", got)
	}
	if got := ratio(5, 20); got != 0.25 {
		t.Errorf("ratio(5, 20) = %v, want 0.25", got)
	}
}
