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
	"sort"
	"time"
)

// Observation is a single wind measurement.
type Observation struct {
	Time time.Time

	// Direction is the direction the wind blows from, in degrees
	// clockwise from north.
	Direction float64

	// Speed is the wind speed in the units of the input data.
	Speed float64
}

// Table holds observations sorted by time.
type Table struct {
	Observations []Observation
}

// NewTable returns a table holding obs, sorted by timestamp. Observations
// with equal timestamps keep their input order.
func NewTable(obs []Observation) *Table {
	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].Time.Before(obs[j].Time)
	})
	return &Table{Observations: obs}
}

// Len returns the number of observations in the table.
func (t *Table) Len() int { return len(t.Observations) }

// Filter returns a new table holding the observations that f keeps.
func (t *Table) Filter(f *Filter) (*Table, error) {
	if f == nil {
		return t, nil
	}
	var o []Observation
	for _, ob := range t.Observations {
		keep, err := f.Keep(ob)
		if err != nil {
			return nil, err
		}
		if keep {
			o = append(o, ob)
		}
	}
	return &Table{Observations: o}, nil
}

// Index is a two-level index over a table: page key, then group key.
// Within a group, observations remain in timestamp order.
type Index struct {
	pages map[Key]map[Key][]Observation
}

// IndexBy groups the table by the keys that page and group compute for
// each observation's timestamp.
func (t *Table) IndexBy(page, group KeyFunc) *Index {
	ix := &Index{pages: make(map[Key]map[Key][]Observation)}
	for _, ob := range t.Observations {
		pk := page(ob.Time)
		groups, ok := ix.pages[pk]
		if !ok {
			groups = make(map[Key][]Observation)
			ix.pages[pk] = groups
		}
		gk := group(ob.Time)
		groups[gk] = append(groups[gk], ob)
	}
	return ix
}

// Select returns the observations in the given page and group, and false
// if there are none.
func (ix *Index) Select(page, group Key) ([]Observation, bool) {
	groups, ok := ix.pages[page]
	if !ok {
		return nil, false
	}
	obs, ok := groups[group]
	return obs, ok
}

// Pages returns the page keys in ascending order.
func (ix *Index) Pages() []Key {
	o := make([]Key, 0, len(ix.pages))
	for k := range ix.pages {
		o = append(o, k)
	}
	sort.Slice(o, func(i, j int) bool { return o[i].Less(o[j]) })
	return o
}

// Groups returns the group keys in page in ascending order.
func (ix *Index) Groups(page Key) []Key {
	groups := ix.pages[page]
	o := make([]Key, 0, len(groups))
	for k := range groups {
		o = append(o, k)
	}
	sort.Slice(o, func(i, j int) bool { return o[i].Less(o[j]) })
	return o
}

// Less reports whether k sorts before k2, comparing parts in order.
func (k Key) Less(k2 Key) bool {
	p, p2 := k.Parts(), k2.Parts()
	for i := 0; i < len(p) && i < len(p2); i++ {
		if p[i] != p2[i] {
			return p[i] < p2[i]
		}
	}
	return len(p) < len(p2)
}

// Directions returns the direction of each observation.
func Directions(obs []Observation) []float64 {
	o := make([]float64, len(obs))
	for i, ob := range obs {
		o[i] = ob.Direction
	}
	return o
}

// Speeds returns the speed of each observation.
func Speeds(obs []Observation) []float64 {
	o := make([]float64, len(obs))
	for i, ob := range obs {
		o[i] = ob.Speed
	}
	return o
}
