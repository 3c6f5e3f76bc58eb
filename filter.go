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
	"strings"

	"github.com/Knetic/govaluate"
)

// Filter selects observations using a boolean expression. The expression
// can refer to the variables speed, direction, year, month, day and hour,
// for example "speed >= 0.5 && month != 2".
type Filter struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// NewFilter parses expr. A blank expression returns a nil filter,
// which keeps every observation.
func NewFilter(expr string) (*Filter, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("windrose: parsing filter %q: %v", expr, err)
	}
	return &Filter{src: expr, expr: e}, nil
}

// Keep reports whether ob satisfies the filter.
func (f *Filter) Keep(ob Observation) (bool, error) {
	if f == nil {
		return true, nil
	}
	r, err := f.expr.Evaluate(map[string]interface{}{
		"speed":     ob.Speed,
		"direction": ob.Direction,
		"year":      float64(ob.Time.Year()),
		"month":     float64(ob.Time.Month()),
		"day":       float64(ob.Time.Day()),
		"hour":      float64(ob.Time.Hour()),
	})
	if err != nil {
		return false, fmt.Errorf("windrose: evaluating filter %q: %v", f.src, err)
	}
	keep, ok := r.(bool)
	if !ok {
		return false, fmt.Errorf("windrose: filter %q returned %v (%T) instead of a boolean",
			f.src, r, r)
	}
	return keep, nil
}
