/*
Copyright © 2018 the windrose authors.
This file is part of windrose.

windrose is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

windrose is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with windrose.  If not, see <http://www.gnu.org/licenses/>.
*/

package windrose

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

const tolerance = 1e-9

func similar(a, b float64) bool { return math.Abs(a-b) < tolerance }

func TestPolar(t *testing.T) {
	tests := []struct {
		deg  float64
		want geom.Point
	}{
		{0, geom.Point{X: 0, Y: 2}},
		{90, geom.Point{X: 2, Y: 0}},
		{180, geom.Point{X: 0, Y: -2}},
		{270, geom.Point{X: -2, Y: 0}},
	}
	for _, test := range tests {
		p := Polar(2, test.deg)
		if !similar(p.X, test.want.X) || !similar(p.Y, test.want.Y) {
			t.Errorf("Polar(2, %g) = %v, want %v", test.deg, p, test.want)
		}
	}
}

func TestPetal(t *testing.T) {
	p := Petal([]float64{1, 1, 1, 1})
	if len(p) != 1 {
		t.Fatalf("have %d rings, want 1", len(p))
	}
	if a := p.Area(); !similar(a, 2) {
		t.Errorf("area: have %g, want 2", a)
	}
	ring := p[0]
	if last := ring[len(ring)-1]; last != (geom.Point{}) {
		t.Errorf("petal should end at the origin, not %v", last)
	}
	if Petal(nil) != nil {
		t.Error("empty petal should be nil")
	}
}

func TestOutline(t *testing.T) {
	o := Outline([]float64{1, 2, 3})
	if len(o) != 4 {
		t.Fatalf("have %d points, want 4", len(o))
	}
	if o[0] != o[3] {
		t.Error("outline is not closed")
	}
	if p := o[1]; !similar(math.Hypot(p.X, p.Y), 2) {
		t.Errorf("second vertex %v should be at radius 2", p)
	}
}

func TestRing(t *testing.T) {
	r := Ring(1, 720)
	if r[0] != r[len(r)-1] {
		t.Error("ring is not closed")
	}
	if l := r.Length(); math.Abs(l-2*math.Pi) > 1e-4 {
		t.Errorf("circumference: have %g, want %g", l, 2*math.Pi)
	}
}

func TestSpoke(t *testing.T) {
	s := Spoke(3, 90)
	if s[0] != (geom.Point{}) || !similar(s[1].X, 3) || !similar(s[1].Y, 0) {
		t.Errorf("unexpected spoke %v", s)
	}
}
