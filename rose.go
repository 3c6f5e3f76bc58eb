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
	"fmt"
	"math"
	"sort"

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultNsector is the default number of direction sectors.
const DefaultNsector = 16

// DefaultBins returns the default speed bins, 0.01 to 8 in steps of 1.
func DefaultBins() []float64 { return Arange(0.01, 8, 1) }

// Arange returns evenly spaced values in [start, stop) separated by step.
func Arange(start, stop, step float64) []float64 {
	if step == 0 || (stop-start)/step <= 0 {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	o := make([]float64, n)
	for i := range o {
		o[i] = start + float64(i)*step
	}
	return o
}

// Rose is a two-dimensional histogram of wind speed by direction.
type Rose struct {
	// Bins holds the lower edge of each speed bin. The last bin
	// has no upper bound.
	Bins []float64

	// Nsector is the number of direction sectors. Sector k is
	// centered on k*360/Nsector degrees.
	Nsector int

	// Table holds the number of observations in each
	// [speed bin][sector].
	Table [][]float64

	// Calm is the number of observations slower than Bins[0].
	Calm int
}

// NewRose bins the paired direction and speed observations.
// NaN and infinite values are skipped.
func NewRose(direction, speed, bins []float64, nsector int) (*Rose, error) {
	if len(direction) != len(speed) {
		return nil, fmt.Errorf("windrose: %d directions but %d speeds", len(direction), len(speed))
	}
	if nsector < 1 {
		return nil, fmt.Errorf("windrose: nsector must be at least 1 but is %d", nsector)
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("windrose: no speed bins")
	}
	for i := 1; i < len(bins); i++ {
		if !(bins[i] > bins[i-1]) {
			return nil, fmt.Errorf("windrose: speed bins must be strictly increasing: %v", bins)
		}
	}

	r := &Rose{
		Bins:    append([]float64(nil), bins...),
		Nsector: nsector,
		Table:   make([][]float64, len(bins)),
	}
	for i := range r.Table {
		r.Table[i] = make([]float64, nsector)
	}

	bySector := make([][]float64, nsector)
	for i, s := range speed {
		d := direction[i]
		if math.IsNaN(s) || math.IsNaN(d) || math.IsInf(s, 0) || math.IsInf(d, 0) {
			continue
		}
		if s < bins[0] {
			r.Calm++
			continue
		}
		k := r.Sector(d)
		bySector[k] = append(bySector[k], s)
	}

	dividers := append(append([]float64(nil), bins...), math.Inf(1))
	count := make([]float64, len(bins))
	for k, x := range bySector {
		if len(x) == 0 {
			continue
		}
		sort.Float64s(x)
		for i := range count {
			count[i] = 0
		}
		stat.Histogram(count, dividers, x, nil)
		for i, c := range count {
			r.Table[i][k] = c
		}
	}
	return r, nil
}

// Sector returns the index of the sector that direction d, in degrees,
// falls in.
func (r *Rose) Sector(d float64) int {
	width := 360 / float64(r.Nsector)
	v := math.Mod(d+width/2, 360)
	if v < 0 {
		v += 360
	}
	k := int(v / width)
	if k >= r.Nsector {
		k = r.Nsector - 1
	}
	return k
}

// Cumulative returns the running total of Table over the speed bins,
// so that the last row holds the total count in each sector.
func (r *Rose) Cumulative() [][]float64 {
	o := make([][]float64, len(r.Table))
	for i, row := range r.Table {
		o[i] = append([]float64(nil), row...)
		if i > 0 {
			floats.Add(o[i], o[i-1])
		}
	}
	return o
}

// Max returns the largest sector total, which is the radial extent
// of the rose.
func (r *Rose) Max() float64 {
	c := r.Cumulative()
	if len(c) == 0 {
		return 0
	}
	return floats.Max(c[len(c)-1])
}

// Total returns the number of binned (non-calm) observations.
func (r *Rose) Total() float64 {
	var t float64
	for _, row := range r.Table {
		t += floats.Sum(row)
	}
	return t
}

// Summary holds descriptive statistics of a set of speeds.
type Summary struct {
	Count     int
	Mean, Max float64
}

// Summarize returns descriptive statistics for speed.
func Summarize(speed []float64) Summary {
	if len(speed) == 0 {
		return Summary{}
	}
	return Summary{
		Count: len(speed),
		Mean:  stats.StatsMean(speed),
		Max:   stats.StatsMax(speed),
	}
}
