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

// Position locates a panel in a paged grid.
type Position struct {
	Sheet, Row, Col int
}

// TuplePosition returns the sheet, row and column of the i'th panel in a
// row-major grid of nrows by ncols panels per sheet. The result is
// undefined for negative i or an empty grid.
func TuplePosition(i, nrows, ncols int) Position {
	perSheet := nrows * ncols
	sheet, pos := i/perSheet, i%perSheet
	return Position{
		Sheet: sheet,
		Row:   pos / ncols,
		Col:   pos % ncols,
	}
}
