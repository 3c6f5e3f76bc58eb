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

	"github.com/ctessum/geom"
)

// Polar returns the Cartesian point at radius r and compass bearing
// deg, with north pointing up and bearings increasing clockwise.
func Polar(r, deg float64) geom.Point {
	theta := math.Pi/2 - deg*math.Pi/180
	return geom.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Petal returns the filled outline of one speed bin: a closed ring through
// radii[k] at the center bearing of each sector k, joined back to the
// origin.
func Petal(radii []float64) geom.Polygon {
	ring := Outline(radii)
	if len(ring) == 0 {
		return nil
	}
	ring = append(ring, geom.Point{})
	return geom.Polygon{[]geom.Point(ring)}
}

// Outline returns the closed line through radii[k] at the center bearing
// of each sector k.
func Outline(radii []float64) geom.LineString {
	n := len(radii)
	if n == 0 {
		return nil
	}
	width := 360 / float64(n)
	o := make(geom.LineString, 0, n+1)
	for k, r := range radii {
		o = append(o, Polar(r, float64(k)*width))
	}
	return append(o, o[0])
}

// Ring returns a circle of radius r approximated by n segments.
func Ring(r float64, n int) geom.LineString {
	o := make(geom.LineString, n+1)
	for i := 0; i < n; i++ {
		o[i] = Polar(r, float64(i)*360/float64(n))
	}
	o[n] = o[0]
	return o
}

// Spoke returns the line from the origin to radius r at bearing deg.
func Spoke(r, deg float64) geom.LineString {
	return geom.LineString{{}, Polar(r, deg)}
}
