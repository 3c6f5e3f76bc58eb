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
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/windrose"
	"github.com/spf13/cast"
	"gonum.org/v1/plot/vg"
)

// expandPath expands environment variables in a path. Paths that are
// not URLs are cleaned.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if strings.Contains(p, "://") {
		return p
	}
	return filepath.Clean(p)
}

// checkYear makes sure the year is one that time.Date can represent
// without ambiguity.
func checkYear(year int) (int, error) {
	if year < 1 || year > 9999 {
		return year, fmt.Errorf("windrose: year must be between 1 and 9999 but is %d", year)
	}
	return year, nil
}

// checkNsector makes sure there is at least one direction sector.
func checkNsector(n int) (int, error) {
	if n < 1 {
		return n, fmt.Errorf("windrose: nsector must be at least 1 but is %d", n)
	}
	return n, nil
}

// checkBins returns the speed bins for the given range, making sure
// there is at least one.
func checkBins(start, stop, step float64) ([]float64, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("windrose: Bins.Step must be > 0 but is %g", step)
	}
	bins := windrose.Arange(start, stop, step)
	if len(bins) == 0 {
		return nil, fmt.Errorf("windrose: there are no speed bins between Bins.Start=%g and Bins.Stop=%g", start, stop)
	}
	return bins, nil
}

// checkFigureSize converts the figure dimensions from inches.
func checkFigureSize(w, h float64) (width, height vg.Length, err error) {
	if !(w > 0) || !(h > 0) {
		return 0, 0, fmt.Errorf("windrose: FigureWidth and FigureHeight must be > 0 but are %g and %g", w, h)
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch, nil
}

// checkOutputFile fills in a default output file if none is specified,
// expands any environment variables and makes sure its directory exists
// and its format is supported.
func checkOutputFile(f string, year int) (string, error) {
	if f == "" {
		f = filepath.Join(os.TempDir(), fmt.Sprintf("windrose_%d.png", year))
	}
	f = os.ExpandEnv(f)
	switch windrose.Format(f) {
	case "png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf":
	default:
		return f, fmt.Errorf("windrose: the OutputFile extension must be one of .png, .jpg, .tif, .svg or .pdf; got %q", f)
	}
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("windrose: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// newLogger returns a logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("windrose: LogLevel: %v", err)
	}
	log := logrus.New()
	log.Out = w
	log.Level = lvl
	log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	}
	return log, nil
}

// settings returns the value of every option, nested by the dots in
// the option names.
func (cfg *Cfg) settings() (map[string]interface{}, error) {
	o := make(map[string]interface{})
	for _, opt := range cfg.options {
		if opt.name == "config" {
			continue
		}
		v := cfg.Get(opt.name)
		var err error
		switch opt.defaultVal.(type) {
		case string:
			v, err = cast.ToStringE(v)
		case bool:
			v, err = cast.ToBoolE(v)
		case int:
			v, err = cast.ToIntE(v)
		case float64:
			v, err = cast.ToFloat64E(v)
		}
		if err != nil {
			return nil, fmt.Errorf("windrose: configuration variable %s: %v", opt.name, err)
		}
		parts := strings.Split(opt.name, ".")
		m := o
		for _, p := range parts[:len(parts)-1] {
			sub, ok := m[p].(map[string]interface{})
			if !ok {
				sub = make(map[string]interface{})
				m[p] = sub
			}
			m = sub
		}
		m[parts[len(parts)-1]] = v
	}
	return o, nil
}

// writeConfig writes the current configuration to w in TOML format.
func (cfg *Cfg) writeConfig(w io.Writer) error {
	s, err := cfg.settings()
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("windrose: writing configuration: %v", err)
	}
	return nil
}
