package analysis

import (
	"testing"

	"sleeper-luck/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRankByScored(t *testing.T) {
	teams := []ClassifiedTeam{
		{Name: "low", ScoredPoints: 90},
		{Name: "high", ScoredPoints: 130},
		{Name: "tie-first", ScoredPoints: 110},
		{Name: "tie-second", ScoredPoints: 110},
	}

	ranked := RankByScored(teams)

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, []string{"high", "tie-first", "tie-second", "low"}, names)
	assert.Equal(t, "low", teams[0].Name, "input must not be reordered")
}

func TestCountByQuadrant(t *testing.T) {
	counts := CountByQuadrant([]ClassifiedTeam{
		{Quadrant: model.QuadrantGood},
		{Quadrant: model.QuadrantGood},
		{Quadrant: model.QuadrantBad},
	})

	assert.Equal(t, 2, counts[model.QuadrantGood])
	assert.Equal(t, 1, counts[model.QuadrantBad])
	assert.Equal(t, 0, counts[model.QuadrantLucky])
}
