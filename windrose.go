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

// Package windrose draws wind roses: polar histograms of wind speed by
// direction. Observations are loaded from CSV or Excel files, grouped by
// calendar period, binned into a Rose and laid out as panels of a Figure.
package windrose

// Version gives the version number.
const Version = "1.0.0"
