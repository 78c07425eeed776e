package skeleton

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(V2(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != V2(2, 3) {
		t.Errorf("Sub = %v, want (2,3)", got)
	}
	if got := p.Vec2(); got != V2(3, 4) {
		t.Errorf("Vec2 = %v, want (3,4)", got)
	}
}

func TestPoint_Distance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"axis aligned", Pt(0, 0), Pt(3, 0), 3},
		{"diagonal", Pt(0, 0), Pt(3, 4), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoint_Lerp(t *testing.T) {
	p, q := Pt(0, 0), Pt(10, 20)
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(5, 10)},
		{1, Pt(10, 20)},
	}
	for _, tt := range tests {
		if got := p.Lerp(q, tt.t); !got.Approx(tt.want, 1e-12) {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPoint_Approx(t *testing.T) {
	if !Pt(1, 1).Approx(Pt(1+1e-10, 1-1e-10), 1e-9) {
		t.Error("nearby points should be approximately equal")
	}
	if Pt(1, 1).Approx(Pt(1.1, 1), 1e-9) {
		t.Error("distant points should not be approximately equal")
	}
}
