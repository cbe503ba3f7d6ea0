package chart

import (
	"image/color"
	"io"
	"strconv"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/service/report"
	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultTitle is the heading drawn above the value-at-risk chart
	DefaultTitle = "Projected Climate Value at Risk"
	// ContentType is the MIME type produced by WriteSVG
	ContentType = "image/svg+xml"
)

var lineColor = color.RGBA{R: 0x63, G: 0x6e, B: 0xfa, A: 0xff}

// Generator draws projection charts
type Generator struct {
	width  vg.Length
	height vg.Length
	title  string
}

type Option func(*Generator)

// WithSize sets the canvas size in points
func WithSize(width, height float64) Option {
	return func(g *Generator) {
		g.width = vg.Points(width)
		g.height = vg.Points(height)
	}
}

// WithTitle overrides DefaultTitle
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		width:  8 * vg.Inch,
		height: 4 * vg.Inch,
		title:  DefaultTitle,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WriteSVG renders Value at Risk against Year as an SVG line chart
func (g *Generator) WriteSVG(w io.Writer, result *model.ProjectionResult) error {
	p, err := g.linePlot(result)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(g.width, g.height, "svg")
	if err != nil {
		return goerr.Wrap(err, "failed to create SVG writer")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write SVG")
	}
	return nil
}

func (g *Generator) linePlot(result *model.ProjectionResult) (*plot.Plot, error) {
	if result == nil || len(result.Rows) == 0 {
		return nil, goerr.New("projection has no rows to plot")
	}

	p := plot.New()
	p.Title.Text = g.title
	p.X.Label.Text = report.ColumnYear
	p.Y.Label.Text = report.ColumnValueAtRisk

	pts := make(plotter.XYs, len(result.Rows))
	yearTicks := make([]plot.Tick, len(result.Rows))
	for i, row := range result.Rows {
		pts[i].X = float64(row.Year)
		pts[i].Y = row.ValueAtRisk
		yearTicks[i] = plot.Tick{Value: float64(row.Year), Label: strconv.Itoa(row.Year)}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create line plotter")
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	points.Color = lineColor

	p.Add(plotter.NewGrid(), line, points)
	p.X.Tick.Marker = plot.ConstantTicks(yearTicks)
	p.Y.Tick.Marker = currencyTicks{}
	p.Y.Min = 0

	return p, nil
}

// currencyTicks labels the default tick positions as dollar amounts
type currencyTicks struct{}

func (currencyTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = report.FormatCurrency(ticks[i].Value)
		}
	}
	return ticks
}
