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
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Default figure dimensions.
const (
	DefaultWidth  = 16 * vg.Inch
	DefaultHeight = 12 * vg.Inch
)

const titleHeight = 0.5 * vg.Inch

var (
	gridColor  = color.Gray{Y: 192}
	compass    = []string{"N", "E", "S", "W"}
	gridRadii  = []float64{0.25, 0.5, 0.75, 1}
	ringPoints = 72
)

// Panel is one wind rose within a figure. A panel without a Rose is
// drawn with its title only.
type Panel struct {
	Title string
	Rose  *Rose
}

// Figure is a set of panels arranged row-major in a grid of Rows by Cols
// panels per page.
type Figure struct {
	Title      string
	Rows, Cols int
	Panels     []*Panel

	// ColorMap colors the speed bins. If nil, an extended black body
	// map is used.
	ColorMap palette.ColorMap
}

// NewFigure returns an empty figure.
func NewFigure(title string, rows, cols int) *Figure {
	return &Figure{Title: title, Rows: rows, Cols: cols}
}

// Add appends a panel to the figure.
func (f *Figure) Add(p *Panel) { f.Panels = append(f.Panels, p) }

// NumPages returns the number of pages needed to hold all panels.
func (f *Figure) NumPages() int {
	if len(f.Panels) == 0 {
		return 1
	}
	return TuplePosition(len(f.Panels)-1, f.Rows, f.Cols).Sheet + 1
}

// Pages returns the plots for each page, indexed by [page][row][column].
// Grid cells without a panel hold blank plots.
func (f *Figure) Pages() ([][][]*plot.Plot, error) {
	if f.Rows < 1 || f.Cols < 1 {
		return nil, fmt.Errorf("windrose: invalid figure grid %dx%d", f.Rows, f.Cols)
	}
	cm := f.ColorMap
	if cm == nil {
		cm = moreland.ExtendedBlackBody()
	}
	pages := make([][][]*plot.Plot, f.NumPages())
	for s := range pages {
		pages[s] = make([][]*plot.Plot, f.Rows)
		for r := range pages[s] {
			pages[s][r] = make([]*plot.Plot, f.Cols)
			for c := range pages[s][r] {
				p := plot.New()
				p.HideAxes()
				pages[s][r][c] = p
			}
		}
	}
	for i, pn := range f.Panels {
		p, err := pn.Plot(cm)
		if err != nil {
			return nil, fmt.Errorf("windrose: drawing panel %q: %v", pn.Title, err)
		}
		pos := TuplePosition(i, f.Rows, f.Cols)
		pages[pos.Sheet][pos.Row][pos.Col] = p
	}
	return pages, nil
}

// Draw draws the given page of the figure onto dc.
func (f *Figure) Draw(dc draw.Canvas, page int) error {
	pages, err := f.Pages()
	if err != nil {
		return err
	}
	if page < 0 || page >= len(pages) {
		return fmt.Errorf("windrose: page %d out of range; figure has %d page(s)", page, len(pages))
	}

	title := f.Title
	if len(pages) > 1 {
		title = fmt.Sprintf("%s (%d/%d)", f.Title, page+1, len(pages))
	}
	h := dc.Max.Y - dc.Min.Y
	tp := plot.New()
	tp.Title.Text = title
	tp.Title.TextStyle.Font.Size = vg.Points(16)
	tp.HideAxes()
	tp.Draw(draw.Crop(dc, 0, 0, h-titleHeight, 0))

	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
		PadBottom: vg.Points(2),
	}
	body := draw.Crop(dc, 0, 0, 0, -titleHeight)
	canvases := plot.Align(pages[page], tiles, body)
	for r, row := range pages[page] {
		for c, p := range row {
			p.Draw(squarePanel(p, canvases[r][c]))
		}
	}
	return nil
}

// squarePanel centers a sub-canvas of c in which the data area of p,
// below its title, is square, so that roses stay circular.
func squarePanel(p *plot.Plot, c draw.Canvas) draw.Canvas {
	var th vg.Length
	if p.Title.Text != "" {
		th = p.Title.TextStyle.Height(p.Title.Text) + p.Title.Padding
	}
	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y-th
	switch {
	case w > h && h > 0:
		d := (w - h) / 2
		return draw.Crop(c, d, -d, 0, 0)
	case h > w:
		d := (h - w) / 2
		return draw.Crop(c, 0, 0, d, -d)
	}
	return c
}

// Format returns the image format implied by the extension of path.
func Format(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// WriteTo renders one page of the figure to w in the given format:
// "png", "jpg", "jpeg", "tif", "tiff", "svg" or "pdf".
func (f *Figure) WriteTo(w io.Writer, page int, format string, width, height vg.Length) error {
	var c interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch format {
	case "png":
		img := vgimg.New(width, height)
		c = vgimg.PngCanvas{Canvas: img}
	case "jpg", "jpeg":
		img := vgimg.New(width, height)
		c = vgimg.JpegCanvas{Canvas: img}
	case "tif", "tiff":
		img := vgimg.New(width, height)
		c = vgimg.TiffCanvas{Canvas: img}
	case "svg":
		c = vgsvg.New(width, height)
	case "pdf":
		c = vgpdf.New(width, height)
	default:
		return fmt.Errorf("windrose: unsupported figure format %q", format)
	}
	if err := f.Draw(draw.New(c), page); err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("windrose: writing figure: %v", err)
	}
	return nil
}

// PagePath returns the file name for the given page of a figure saved
// to path. The first page is written to path itself.
func PagePath(path string, page int) string {
	if page == 0 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), page+1, ext)
}

// Save writes every page of the figure to files derived from path
// and returns their names. The format follows the file extension.
func (f *Figure) Save(path string, width, height vg.Length) ([]string, error) {
	format := Format(path)
	var paths []string
	for page := 0; page < f.NumPages(); page++ {
		name := PagePath(path, page)
		w, err := os.Create(name)
		if err != nil {
			return paths, fmt.Errorf("windrose: creating figure file: %v", err)
		}
		if err := f.WriteTo(w, page, format, width, height); err != nil {
			w.Close()
			return paths, err
		}
		if err := w.Close(); err != nil {
			return paths, fmt.Errorf("windrose: closing figure file: %v", err)
		}
		paths = append(paths, name)
	}
	return paths, nil
}

// Plot draws the panel. Speed bins are stacked outward from the center,
// each filled with its color and outlined in black.
func (pn *Panel) Plot(cm palette.ColorMap) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pn.Title
	p.HideAxes()
	if pn.Rose == nil {
		return p, nil
	}

	rmax := pn.Rose.Max()
	if rmax == 0 {
		rmax = 1
	}
	lim := 1.25 * rmax
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim

	for _, frac := range gridRadii {
		if err := addLine(p, Ring(frac*rmax, ringPoints), gridColor, vg.Points(0.5)); err != nil {
			return nil, err
		}
	}
	for k := 0; k < 8; k++ {
		if err := addLine(p, Spoke(rmax, float64(k)*45), gridColor, vg.Points(0.5)); err != nil {
			return nil, err
		}
	}

	cum := pn.Rose.Cumulative()
	colors, err := BinColors(cm, len(cum))
	if err != nil {
		return nil, err
	}
	// Outer bins first so inner ones stay visible.
	for i := len(cum) - 1; i >= 0; i-- {
		poly, err := plotter.NewPolygon(xys(Petal(cum[i])[0]))
		if err != nil {
			return nil, err
		}
		poly.Color = colors[i]
		poly.LineStyle.Width = 0
		p.Add(poly)
	}
	for _, radii := range cum {
		if err := addLine(p, Outline(radii), color.Black, vg.Points(0.5)); err != nil {
			return nil, err
		}
	}

	var labels plotter.XYLabels
	for i, name := range compass {
		pt := Polar(1.12*rmax, float64(i)*90)
		labels.XYs = append(labels.XYs, plotter.XY{X: pt.X, Y: pt.Y})
		labels.Labels = append(labels.Labels, name)
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(l)
	return p, nil
}

// BinColors samples n evenly spaced colors from cm, from its
// minimum to its maximum.
func BinColors(cm palette.ColorMap, n int) ([]color.Color, error) {
	if n == 0 {
		return nil, nil
	}
	cm.SetMin(0)
	cm.SetMax(1)
	v := []float64{0}
	if n > 1 {
		v = floats.Span(make([]float64, n), 0, 1)
	}
	o := make([]color.Color, n)
	for i, x := range v {
		c, err := cm.At(x)
		if err != nil {
			return nil, fmt.Errorf("windrose: bin color: %v", err)
		}
		o[i] = c
	}
	return o, nil
}

func addLine(p *plot.Plot, pts geom.LineString, c color.Color, w vg.Length) error {
	l, err := plotter.NewLine(xys(pts))
	if err != nil {
		return err
	}
	l.Color = c
	l.Width = w
	p.Add(l)
	return nil
}

func xys(pts []geom.Point) plotter.XYs {
	o := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		o[i].X, o[i].Y = pt.X, pt.Y
	}
	return o
}
