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
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/tealeg/xlsx"
)

// Names of the input columns.
const (
	TimestampColumn = "Timestamp"
	DirectionColumn = "direction"
	SpeedColumn     = "speed"
)

// Load reads the observations in the file at path. Files with the ".xlsx"
// extension are read as Microsoft Excel workbooks; all other files are
// read as CSV.
func Load(path string) (*Table, error) {
	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		return ReadXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("windrose: opening input file: %v", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads comma-separated observations from r. The first record is
// a header that must name the Timestamp, direction and speed columns;
// other columns are ignored.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("windrose: reading CSV header: %v", err)
	}
	cols, err := findColumns(header)
	if err != nil {
		return nil, err
	}
	var obs []Observation
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("windrose: reading CSV: %v", err)
		}
		ob, err := cols.parse(rec, line)
		if err != nil {
			return nil, err
		}
		obs = append(obs, ob)
	}
	return NewTable(obs), nil
}

// ReadXLSX reads observations from the first sheet of the Microsoft Excel
// workbook at path. The layout is the same as for ReadCSV.
func ReadXLSX(path string) (*Table, error) {
	sheets, err := xlsx.FileToSlice(path)
	if err != nil {
		return nil, fmt.Errorf("windrose: opening xlsx file: %v", err)
	}
	if len(sheets) == 0 || len(sheets[0]) == 0 {
		return nil, fmt.Errorf("windrose: xlsx file %s has no header row", path)
	}
	rows := sheets[0]
	cols, err := findColumns(rows[0])
	if err != nil {
		return nil, err
	}
	var obs []Observation
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		ob, err := cols.parse(row, i+2)
		if err != nil {
			return nil, err
		}
		obs = append(obs, ob)
	}
	return NewTable(obs), nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// timeLayouts are tried before the layouts known to cast.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
}

func parseTime(s string) (time.Time, error) {
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return cast.ToTimeE(s)
}

// missingValues are the cell values read as NaN: the empty string and
// the markers pandas treats as missing by default.
var missingValues = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true,
	"1.#QNAN": true, "<NA>": true, "N/A": true, "NA": true, "NULL": true,
	"NaN": true, "None": true, "n/a": true, "nan": true, "null": true,
}

func parseFloat(s string) (float64, error) {
	if missingValues[s] {
		return math.NaN(), nil
	}
	return cast.ToFloat64E(s)
}

// columns holds the positions of the input columns within a record.
type columns struct {
	timestamp, direction, speed int
}

func findColumns(header []string) (columns, error) {
	pos := make(map[string]int)
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, ok := pos[h]; ok && isInputColumn(h) {
			return columns{}, fmt.Errorf("windrose: input has more than one %s column", h)
		}
		pos[h] = i
	}
	var c columns
	var missing []string
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{TimestampColumn, &c.timestamp},
		{DirectionColumn, &c.direction},
		{SpeedColumn, &c.speed},
	} {
		i, ok := pos[col.name]
		if !ok {
			missing = append(missing, col.name)
			continue
		}
		*col.dst = i
	}
	if len(missing) > 0 {
		return c, fmt.Errorf("windrose: input is missing column(s) %s; found %v",
			strings.Join(missing, ", "), header)
	}
	return c, nil
}

func isInputColumn(name string) bool {
	return name == TimestampColumn || name == DirectionColumn || name == SpeedColumn
}

func (c columns) parse(rec []string, line int) (Observation, error) {
	var ob Observation
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	t, err := parseTime(field(c.timestamp))
	if err != nil {
		return ob, fmt.Errorf("windrose: line %d: parsing %s: %v", line, TimestampColumn, err)
	}
	d, err := parseFloat(field(c.direction))
	if err != nil {
		return ob, fmt.Errorf("windrose: line %d: parsing %s: %v", line, DirectionColumn, err)
	}
	s, err := parseFloat(field(c.speed))
	if err != nil {
		return ob, fmt.Errorf("windrose: line %d: parsing %s: %v", line, SpeedColumn, err)
	}
	ob.Time, ob.Direction, ob.Speed = t, d, s
	return ob, nil
}
