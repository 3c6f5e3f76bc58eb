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
	"reflect"
	"strings"
	"testing"
	"time"
)

var testTimes = []time.Time{
	time.Date(2014, time.March, 15, 12, 30, 0, 0, time.UTC),
	time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
	time.Date(2016, time.February, 29, 0, 0, 0, 0, time.UTC),
}

func TestByFuncAliases(t *testing.T) {
	tests := []struct {
		aliases []string
		want    func(time.Time) []int
	}{
		{
			aliases: []string{"year", "yearly", "Y"},
			want:    func(d time.Time) []int { return []int{d.Year()} },
		},
		{
			aliases: []string{"month", "monthly", "MS"},
			want:    func(d time.Time) []int { return []int{d.Year(), int(d.Month())} },
		},
		{
			aliases: []string{"day", "daily", "D"},
			want:    func(d time.Time) []int { return []int{d.Year(), int(d.Month()), d.Day()} },
		},
	}
	for _, test := range tests {
		for _, alias := range test.aliases {
			t.Run(alias, func(t *testing.T) {
				f, err := ByFunc(alias, nil)
				if err != nil {
					t.Fatal(err)
				}
				for _, d := range testTimes {
					have := f(d).Parts()
					want := test.want(d)
					if !reflect.DeepEqual(have, want) {
						t.Errorf("%v: have %v, want %v", d, have, want)
					}
				}
			})
		}
	}
}

func TestByFuncDefault(t *testing.T) {
	def, err := ByFunc("", nil)
	if err != nil {
		t.Fatal(err)
	}
	month, err := ByFunc("month", nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range testTimes {
		if def(d) != month(d) {
			t.Errorf("%v: default %v != monthly %v", d, def(d), month(d))
		}
	}
}

func TestByFuncCustom(t *testing.T) {
	hour := func(d time.Time) Key { return Key{Year: d.Hour(), Len: 1} }

	t.Run("passthrough", func(t *testing.T) {
		f, err := ByFunc("", hour)
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range testTimes {
			if f(d) != hour(d) {
				t.Errorf("%v: have %v, want %v", d, f(d), hour(d))
			}
		}
	})
	t.Run("named wins", func(t *testing.T) {
		f, err := ByFunc("Y", hour)
		if err != nil {
			t.Fatal(err)
		}
		d := testTimes[0]
		if want := YearKey(2014); f(d) != want {
			t.Errorf("have %v, want %v", f(d), want)
		}
	})
	t.Run("unsupported with custom", func(t *testing.T) {
		if _, err := ByFunc("hourly", hour); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestByFuncUnsupported(t *testing.T) {
	for _, by := range []string{"bogus", "Month", "YEARLY", "d", " month"} {
		t.Run(by, func(t *testing.T) {
			f, err := ByFunc(by, nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if f != nil {
				t.Error("expected no function")
			}
			if !strings.Contains(err.Error(), by) {
				t.Errorf("error %q does not mention %q", err, by)
			}
			if e, ok := err.(*UnsupportedGranularityError); !ok || e.By != by {
				t.Errorf("unexpected error %#v", err)
			}
		})
	}
}

func TestParseGranularity(t *testing.T) {
	for s, want := range map[string]Granularity{"Y": Yearly, "MS": Monthly, "daily": Daily} {
		g, err := ParseGranularity(s)
		if err != nil {
			t.Fatal(err)
		}
		if g != want {
			t.Errorf("%s: have %v, want %v", s, g, want)
		}
	}
	if _, err := ParseGranularity("weekly"); err == nil {
		t.Error("expected an error for weekly")
	}
	if Granularity(0).KeyFunc() != nil {
		t.Error("invalid granularity should have no key function")
	}
	if s := Monthly.String(); s != "monthly" {
		t.Errorf("have %s, want monthly", s)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		k    Key
		s    string
		less Key
	}{
		{k: YearKey(2014), s: "2014", less: YearKey(2015)},
		{k: MonthKey(2014, time.March), s: "(2014, 3)", less: MonthKey(2014, time.April)},
		{k: DayKey(2014, time.March, 9), s: "(2014, 3, 9)", less: DayKey(2014, time.March, 10)},
	}
	for _, test := range tests {
		if test.k.String() != test.s {
			t.Errorf("have %s, want %s", test.k, test.s)
		}
		if !test.k.Less(test.less) || test.less.Less(test.k) {
			t.Errorf("%v should sort before %v", test.k, test.less)
		}
		if len(test.k.Parts()) != test.k.Len {
			t.Errorf("%v: %d parts", test.k, len(test.k.Parts()))
		}
	}
}
