package web

import (
	"fmt"
	"math"
	"strconv"

	"sleeper-luck/internal/analysis"
)

// Chart maps per-week averages onto SVG coordinates. X is average scored, Y is average
// projected; SVG's y axis grows downward so Y flips it.
type Chart struct {
	Width, Height float64
	Margin        float64

	XMin, XMax float64
	YMin, YMax float64
}

const (
	chartWidth  = 720
	chartHeight = 420
	chartMargin = 50

	// chartPad widens the data range on each side, as a fraction of the range.
	chartPad = 0.08
)

// NewChart sizes the axes so every team and both reference lines are visible.
func NewChart(teams []analysis.ClassifiedTeam, avg analysis.Averages) Chart {
	c := Chart{Width: chartWidth, Height: chartHeight, Margin: chartMargin}

	xs := []float64{avg.Scored}
	ys := []float64{avg.Projected}
	for _, t := range teams {
		xs = append(xs, t.ScoredPoints)
		ys = append(ys, t.ProjectedPoints)
	}
	c.XMin, c.XMax = paddedRange(xs)
	c.YMin, c.YMax = paddedRange(ys)
	return c
}

func paddedRange(vs []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	pad := (hi - lo) * chartPad
	if pad == 0 {
		pad = 1
	}
	return math.Floor(lo - pad), math.Ceil(hi + pad)
}

// X converts an average-scored value to an SVG x coordinate.
func (c Chart) X(v float64) float64 {
	return c.Margin + (v-c.XMin)/(c.XMax-c.XMin)*c.PlotWidth()
}

// Y converts an average-projected value to an SVG y coordinate.
func (c Chart) Y(v float64) float64 {
	return c.Margin + (c.YMax-v)/(c.YMax-c.YMin)*c.PlotHeight()
}

// ViewBox is the SVG viewBox attribute for the whole chart.
func (c Chart) ViewBox() string {
	return fmt.Sprintf("0 0 %s %s", num(c.Width), num(c.Height))
}

func (c Chart) Left() float64   { return c.Margin }
func (c Chart) Right() float64  { return c.Width - c.Margin }
func (c Chart) Top() float64    { return c.Margin }
func (c Chart) Bottom() float64 { return c.Height - c.Margin }

func (c Chart) PlotWidth() float64  { return c.Width - 2*c.Margin }
func (c Chart) PlotHeight() float64 { return c.Height - 2*c.Margin }

// YLabelTransform turns the y axis label to run bottom to top along the left edge.
func (c Chart) YLabelTransform() string {
	return fmt.Sprintf("rotate(-90 14 %s)", num(c.Height/2))
}

// Ticks returns n+1 evenly spaced values from lo to hi.
func Ticks(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{lo}
	}
	out := make([]float64, n+1)
	step := (hi - lo) / float64(n)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// num formats an SVG coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func pointLabel(t analysis.ClassifiedTeam) string {
	return fmt.Sprintf("%s: %.1f scored, %.1f projected (%s)", t.Name, t.ScoredPoints, t.ProjectedPoints, t.Quadrant)
}
