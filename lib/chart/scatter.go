// Package chart renders the aligned dataset as a scatterplot.
package chart

import (
	"fmt"
	"image/color"
	"log"

	"github.com/kpaschen/sdgcorr/lib/datatypes"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

type Options struct {
	Title  string
	XLabel string
	YLabel string
	// Both axes use the same fixed range.
	AxisMin float64
	AxisMax float64
	// Side length of the data area. The canvas grows around it to make
	// room for titles, labels and tick marks.
	SizeInches float64
}

// NewScatterPlot plots ValuesA on x against ValuesB on y.
func NewScatterPlot(ds datatypes.AlignedDataset, opts Options) (*plot.Plot, error) {
	if opts.AxisMax <= opts.AxisMin {
		return nil, fmt.Errorf("bad axis range [%f, %f]", opts.AxisMin, opts.AxisMax)
	}
	n := min(len(ds.ValuesA), len(ds.ValuesB))

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	if n > 0 {
		pts := make(plotter.XYs, n)
		for i := 0; i < n; i++ {
			pts[i].X = ds.ValuesA[i]
			pts[i].Y = ds.ValuesB[i]
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Shape = draw.CrossGlyph{}
		scatter.GlyphStyle.Color = color.Black
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
	}
	p.Add(plotter.NewGrid())

	// Add widens the axes to the data; pin them afterwards.
	p.X.Min, p.X.Max = opts.AxisMin, opts.AxisMax
	p.Y.Min, p.Y.Max = opts.AxisMin, opts.AxisMax
	return p, nil
}

// CanvasSize returns the canvas dimensions for which the data area of p is
// a side by side square, so one unit has the same length on both axes.
// The space taken by titles, labels and ticks does not depend on the canvas
// size, so one measurement on a side by side canvas is enough.
func CanvasSize(p *plot.Plot, side vg.Length) (vg.Length, vg.Length) {
	data := DataArea(p, side, side)
	return side + (side - data.X), side + (side - data.Y)
}

// DataArea is the size of the region inside the axes of p when it is drawn
// on a width by height canvas.
func DataArea(p *plot.Plot, width, height vg.Length) vg.Point {
	da := p.DataCanvas(draw.New(vgimg.New(width, height)))
	return vg.Point{X: da.Max.X - da.Min.X, Y: da.Max.Y - da.Min.Y}
}

// Scatter renders the plot and writes it to filename, replacing any
// existing file. The image format follows the file extension.
func Scatter(ds datatypes.AlignedDataset, opts Options, filename string) error {
	p, err := NewScatterPlot(ds, opts)
	if err != nil {
		return err
	}
	width, height := CanvasSize(p, vg.Length(opts.SizeInches)*vg.Inch)
	if err := p.Save(width, height, filename); err != nil {
		return fmt.Errorf("saving scatterplot to %s: %w", filename, err)
	}
	log.Printf("wrote scatterplot of %d points to %s\n", ds.Len(), filename)
	return nil
}
