package analysis

import (
	"sort"

	"sleeper-luck/internal/model"
)

// RankedTeam is a classified team with its 1-based position by average scored.
type RankedTeam struct {
	ClassifiedTeam
	Rank int
}

// RankByScored sorts teams descending by average scored points. Ties keep input order.
func RankByScored(teams []ClassifiedTeam) []RankedTeam {
	out := make([]RankedTeam, 0, len(teams))
	for _, t := range teams {
		out = append(out, RankedTeam{ClassifiedTeam: t})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScoredPoints > out[j].ScoredPoints
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// CountByQuadrant tallies how many teams landed in each quadrant.
func CountByQuadrant(teams []ClassifiedTeam) map[model.Quadrant]int {
	counts := make(map[model.Quadrant]int, len(model.Quadrants))
	for _, t := range teams {
		counts[t.Quadrant]++
	}
	return counts
}
