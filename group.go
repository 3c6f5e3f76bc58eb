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
	"time"
)

// Key is a grouping key derived from a timestamp. Len is the number of
// meaningful parts: 1 for (year), 2 for (year, month) and 3 for
// (year, month, day). Unused parts are left at their zero values so that
// keys of the same granularity compare equal.
type Key struct {
	Year  int
	Month time.Month
	Day   int
	Len   int
}

// YearKey returns the yearly key (year).
func YearKey(year int) Key { return Key{Year: year, Len: 1} }

// MonthKey returns the monthly key (year, month).
func MonthKey(year int, month time.Month) Key {
	return Key{Year: year, Month: month, Len: 2}
}

// DayKey returns the daily key (year, month, day).
func DayKey(year int, month time.Month, day int) Key {
	return Key{Year: year, Month: month, Day: day, Len: 3}
}

// Parts returns the meaningful parts of the key in order.
func (k Key) Parts() []int {
	p := []int{k.Year, int(k.Month), k.Day}
	if k.Len < 0 || k.Len > len(p) {
		return p
	}
	return p[:k.Len]
}

func (k Key) String() string {
	switch k.Len {
	case 1:
		return fmt.Sprintf("%d", k.Year)
	case 2:
		return fmt.Sprintf("(%d, %d)", k.Year, k.Month)
	default:
		return fmt.Sprintf("(%d, %d, %d)", k.Year, k.Month, k.Day)
	}
}

// KeyFunc maps a timestamp to the group it belongs to.
type KeyFunc func(time.Time) Key

// Granularity is a calendar grouping resolution.
type Granularity int

// Supported granularities.
const (
	Yearly Granularity = iota + 1
	Monthly
	Daily
)

// granularityAliases maps the accepted symbolic names to a granularity.
// Matching is exact and case sensitive.
var granularityAliases = map[string]Granularity{
	"year":    Yearly,
	"yearly":  Yearly,
	"Y":       Yearly,
	"month":   Monthly,
	"monthly": Monthly,
	"MS":      Monthly, // month start
	"day":     Daily,
	"daily":   Daily,
	"D":       Daily,
}

var granularityFuncs = map[Granularity]KeyFunc{
	Yearly: func(t time.Time) Key {
		return YearKey(t.Year())
	},
	Monthly: func(t time.Time) Key {
		return MonthKey(t.Year(), t.Month())
	},
	Daily: func(t time.Time) Key {
		return DayKey(t.Year(), t.Month(), t.Day())
	},
}

func (g Granularity) String() string {
	switch g {
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	case Daily:
		return "daily"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// KeyFunc returns the grouping function for g, or nil if g is not
// a supported granularity.
func (g Granularity) KeyFunc() KeyFunc {
	return granularityFuncs[g]
}

// UnsupportedGranularityError is returned when a grouping name is not
// one of the recognized aliases.
type UnsupportedGranularityError struct {
	By string
}

func (e *UnsupportedGranularityError) Error() string {
	return fmt.Sprintf("windrose: '%s' is not an allowed 'by' parameter", e.By)
}

// ParseGranularity returns the granularity named by s.
func ParseGranularity(s string) (Granularity, error) {
	g, ok := granularityAliases[s]
	if !ok {
		return 0, &UnsupportedGranularityError{By: s}
	}
	return g, nil
}

// ByFunc returns the function that computes grouping keys. by is one of
// "year", "yearly", "Y", "month", "monthly", "MS", "day", "daily" or "D";
// the empty string means unset. custom is used as-is when by is unset.
// When both are unset the result groups by month.
func ByFunc(by string, custom KeyFunc) (KeyFunc, error) {
	if by == "" && custom == nil {
		by = "MS"
	}
	if g, ok := granularityAliases[by]; ok {
		return g.KeyFunc(), nil
	}
	if by == "" {
		return custom, nil
	}
	return nil, &UnsupportedGranularityError{By: by}
}
