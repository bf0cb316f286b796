package report

import (
	"sleeper-luck/internal/analysis"
	"sleeper-luck/internal/model"
)

const demoWeeks = 12

// demoTeams are fixed sample results. Their labels are part of the sample and are not
// recomputed against the sample's own averages.
var demoTeams = []struct {
	name      string
	projected float64
	scored    float64
	quadrant  model.Quadrant
}{
	{"Team Alpha", 125.8, 142.3, model.QuadrantLucky},
	{"Team Bravo", 118.2, 115.7, model.QuadrantBad},
	{"Team Charlie", 135.6, 138.9, model.QuadrantGood},
	{"Team Delta", 129.4, 108.2, model.QuadrantUnlucky},
	{"Team Echo", 122.1, 126.8, model.QuadrantLucky},
	{"Team Foxtrot", 131.7, 133.5, model.QuadrantGood},
	{"Team Golf", 117.9, 112.4, model.QuadrantBad},
	{"Team Hotel", 128.8, 119.6, model.QuadrantUnlucky},
	{"Team India", 124.3, 131.1, model.QuadrantLucky},
	{"Team Juliet", 119.6, 121.7, model.QuadrantGood},
}

// Demo returns the static sample report. It never touches the network.
func Demo() *Report {
	teams := make([]analysis.ClassifiedTeam, 0, len(demoTeams))
	for i, d := range demoTeams {
		teams = append(teams, analysis.ClassifiedTeam{
			RosterID:        i + 1,
			Name:            d.name,
			ProjectedPoints: d.projected,
			ScoredPoints:    d.scored,
			TotalProjected:  d.projected * demoWeeks,
			TotalScored:     d.scored * demoWeeks,
			Weeks:           demoWeeks,
			Quadrant:        d.quadrant,
		})
	}
	return &Report{
		LeagueID: "demo",
		League: LeagueInfo{
			Name:         "Demo League",
			Season:       "2024",
			TotalRosters: 10,
		},
		Teams:    teams,
		Averages: analysis.LeagueAverages(teams),
		Demo:     true,
	}
}
