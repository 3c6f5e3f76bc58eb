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
	"reflect"
	"testing"

	"github.com/kr/pretty"
)

func TestArange(t *testing.T) {
	tests := []struct {
		start, stop, step float64
		want              []float64
	}{
		{0, 3, 1, []float64{0, 1, 2}},
		{0, 1, 0.5, []float64{0, 0.5}},
		{3, 0, 1, nil},
		{0, 3, 0, nil},
	}
	for _, test := range tests {
		have := Arange(test.start, test.stop, test.step)
		if !reflect.DeepEqual(have, test.want) {
			t.Errorf("Arange(%g, %g, %g) = %v, want %v", test.start, test.stop, test.step, have, test.want)
		}
	}

	bins := DefaultBins()
	if len(bins) != 8 {
		t.Fatalf("have %d default bins, want 8", len(bins))
	}
	if bins[0] != 0.01 || math.Abs(bins[7]-7.01) > 1e-12 {
		t.Errorf("default bins %v", bins)
	}
}

func TestSector(t *testing.T) {
	r := &Rose{Nsector: 16}
	tests := map[float64]int{
		0:     0,
		355:   0,
		360:   0,
		-10:   0,
		11.24: 0,
		11.25: 1,
		90:    4,
		180:   8,
		348.7: 15,
		720:   0,
	}
	for d, want := range tests {
		if have := r.Sector(d); have != want {
			t.Errorf("Sector(%g) = %d, want %d", d, have, want)
		}
	}
}

func TestNewRose(t *testing.T) {
	direction := []float64{0, 0, 350, 90, 180, 270, 44}
	speed := []float64{0.1, 1, 3, 5, 2, math.NaN(), 100}
	r, err := NewRose(direction, speed, []float64{0.5, 2, 4}, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]float64{
		{1, 0, 0, 0},
		{1, 0, 1, 0},
		{1, 1, 0, 0},
	}
	if !reflect.DeepEqual(r.Table, want) {
		t.Errorf("table: %v", pretty.Diff(r.Table, want))
	}
	if r.Calm != 1 {
		t.Errorf("calm: have %d, want 1", r.Calm)
	}
	if r.Total() != 5 {
		t.Errorf("total: have %g, want 5", r.Total())
	}
	cum := r.Cumulative()
	if have, want := cum[len(cum)-1], []float64{3, 1, 1, 0}; !reflect.DeepEqual(have, want) {
		t.Errorf("cumulative: have %v, want %v", have, want)
	}
	if r.Max() != 3 {
		t.Errorf("max: have %g, want 3", r.Max())
	}
	// Cumulative must not modify the table.
	if !reflect.DeepEqual(r.Table, want) {
		t.Error("Cumulative modified the table")
	}
}

func TestNewRoseEmpty(t *testing.T) {
	r, err := NewRose(nil, nil, DefaultBins(), DefaultNsector)
	if err != nil {
		t.Fatal(err)
	}
	if r.Total() != 0 || r.Max() != 0 || r.Calm != 0 {
		t.Errorf("unexpected rose %# v", pretty.Formatter(r))
	}
}

func TestNewRoseErrors(t *testing.T) {
	tests := []struct {
		name             string
		direction, speed []float64
		bins             []float64
		nsector          int
	}{
		{name: "length", direction: []float64{1}, speed: nil, bins: []float64{0}, nsector: 4},
		{name: "nsector", bins: []float64{0}, nsector: 0},
		{name: "no bins", nsector: 4},
		{name: "unsorted bins", bins: []float64{0, 2, 1}, nsector: 4},
		{name: "repeated bins", bins: []float64{0, 1, 1}, nsector: 4},
	}
	for _, test := range tests {
		if _, err := NewRose(test.direction, test.speed, test.bins, test.nsector); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 6})
	if s.Count != 3 || s.Mean != 3 || s.Max != 6 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("unexpected empty summary %+v", s)
	}
}
