package model

// Quadrant is a human-friendly luck category for a team.
// Keep these values stable; they are part of the JSON and CSV output.
type Quadrant string

const (
	QuadrantGood    Quadrant = "Good Teams"
	QuadrantLucky   Quadrant = "Lucky Teams"
	QuadrantUnlucky Quadrant = "Unlucky Teams"
	QuadrantBad     Quadrant = "Bad Teams"
)

// Quadrants lists every category in display order.
var Quadrants = []Quadrant{QuadrantGood, QuadrantLucky, QuadrantUnlucky, QuadrantBad}

// QuadrantFor places a team relative to the league averages. Ties go to the
// "high" side on both axes, so a team sitting exactly on both averages is Good.
func QuadrantFor(scored, projected, avgScored, avgProjected float64) Quadrant {
	switch {
	case scored >= avgScored && projected >= avgProjected:
		return QuadrantGood
	case scored >= avgScored && projected < avgProjected:
		return QuadrantLucky
	case scored < avgScored && projected >= avgProjected:
		return QuadrantUnlucky
	default:
		return QuadrantBad
	}
}

// Color is the hex colour used for the quadrant in charts and badges.
func (q Quadrant) Color() string {
	switch q {
	case QuadrantGood:
		return "#22c55e"
	case QuadrantLucky:
		return "#f59e0b"
	case QuadrantUnlucky:
		return "#ef4444"
	case QuadrantBad:
		return "#6b7280"
	default:
		return "#3b82f6"
	}
}

// Description summarises where the quadrant sits on the chart.
func (q Quadrant) Description() string {
	switch q {
	case QuadrantGood:
		return "High Scored, High Projected"
	case QuadrantLucky:
		return "High Scored, Low Projected"
	case QuadrantUnlucky:
		return "Low Scored, High Projected"
	case QuadrantBad:
		return "Low Scored, Low Projected"
	default:
		return ""
	}
}
