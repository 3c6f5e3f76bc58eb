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

package windroseutil

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/windrose"
	"gonum.org/v1/plot/vg"
)

// Rows and columns of monthly panels in a figure.
const (
	nrows = 3
	ncols = 4
)

// Run loads the observations in inputFile, keeps those that filter
// selects, and writes a figure with one wind rose per month of year to
// outputFile. It returns the paths of the files written.
func Run(log logrus.FieldLogger, inputFile string, year int, bins []float64, nsector int,
	filter *windrose.Filter, outputFile string, width, height vg.Length) ([]string, error) {

	log.WithField("file", inputFile).Info("loading observations")
	t, err := windrose.Load(inputFile)
	if err != nil {
		return nil, err
	}
	if t, err = t.Filter(filter); err != nil {
		return nil, err
	}
	log.WithField("observations", t.Len()).Debug("loaded observations")

	fig, err := MonthlyFigure(log, t, year, bins, nsector)
	if err != nil {
		return nil, err
	}
	return fig.Save(outputFile, width, height)
}

// MonthlyFigure returns a figure with one panel per month of year, placed
// row-major in a 3 by 4 grid. Months without observations get a panel
// with a title only.
func MonthlyFigure(log logrus.FieldLogger, t *windrose.Table, year int, bins []float64, nsector int) (*windrose.Figure, error) {
	byPage, err := windrose.ByFunc("year", nil)
	if err != nil {
		return nil, err
	}
	byMonth, err := windrose.ByFunc("month", nil)
	if err != nil {
		return nil, err
	}
	ix := t.IndexBy(byPage, byMonth)

	fig := windrose.NewFigure(fmt.Sprintf("Wind speed - %d", year), nrows, ncols)
	for month := time.January; month <= time.December; month++ {
		date := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		panel := &windrose.Panel{Title: date.Format("Jan")}
		fig.Add(panel)

		mlog := log.WithFields(logrus.Fields{"year": year, "month": panel.Title})
		obs, ok := ix.Select(byPage(date), byMonth(date))
		if !ok {
			mlog.Debug("no observations")
			continue
		}
		speed := windrose.Speeds(obs)
		rose, err := windrose.NewRose(windrose.Directions(obs), speed, bins, nsector)
		if err != nil {
			return nil, fmt.Errorf("windrose: %s %d: %v", panel.Title, year, err)
		}
		panel.Rose = rose

		s := windrose.Summarize(speed)
		mlog.WithFields(logrus.Fields{
			"observations": s.Count,
			"calm":         rose.Calm,
			"mean_speed":   s.Mean,
			"max_speed":    s.Max,
		}).Info("binned observations")
	}
	return fig, nil
}
