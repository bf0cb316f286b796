package web

import (
	"testing"

	"sleeper-luck/internal/analysis"

	"github.com/stretchr/testify/assert"
)

func TestNewChart_CoversTeamsAndAverages(t *testing.T) {
	teams := []analysis.ClassifiedTeam{
		{ScoredPoints: 100, ProjectedPoints: 90},
		{ScoredPoints: 140, ProjectedPoints: 130},
	}
	c := NewChart(teams, analysis.Averages{Scored: 120, Projected: 110})

	assert.LessOrEqual(t, c.XMin, 100.0)
	assert.GreaterOrEqual(t, c.XMax, 140.0)
	assert.LessOrEqual(t, c.YMin, 90.0)
	assert.GreaterOrEqual(t, c.YMax, 130.0)

	for _, team := range teams {
		x, y := c.X(team.ScoredPoints), c.Y(team.ProjectedPoints)
		assert.True(t, x >= c.Margin && x <= c.Width-c.Margin, "x=%v", x)
		assert.True(t, y >= c.Margin && y <= c.Height-c.Margin, "y=%v", y)
	}
}

func TestChart_YIsInverted(t *testing.T) {
	c := Chart{Width: 200, Height: 200, Margin: 0, XMin: 0, XMax: 100, YMin: 0, YMax: 100}

	assert.InDelta(t, 0.0, c.X(0), 1e-9)
	assert.InDelta(t, 200.0, c.X(100), 1e-9)
	assert.InDelta(t, 200.0, c.Y(0), 1e-9)
	assert.InDelta(t, 0.0, c.Y(100), 1e-9)
}

func TestNewChart_SinglePoint(t *testing.T) {
	teams := []analysis.ClassifiedTeam{{ScoredPoints: 100, ProjectedPoints: 100}}
	c := NewChart(teams, analysis.Averages{Scored: 100, Projected: 100})

	assert.Less(t, c.XMin, c.XMax)
	assert.Less(t, c.YMin, c.YMax)
	assert.InDelta(t, c.Width/2, c.X(100), 1e-9)
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, Ticks(0, 100, 4))
	assert.Equal(t, []float64{5}, Ticks(5, 10, 0))
}
