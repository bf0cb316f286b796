package analysis

import "sleeper-luck/internal/model"

// ClassifiedTeam is a team's per-week averages and its luck quadrant.
type ClassifiedTeam struct {
	RosterID int
	Name     string

	// Per-week averages.
	ProjectedPoints float64
	ScoredPoints    float64

	TotalProjected float64
	TotalScored    float64
	Weeks          int

	Quadrant model.Quadrant
}

// Averages are the league-wide reference lines teams are classified against.
type Averages struct {
	Scored    float64
	Projected float64
}

// Classify averages each team and labels it relative to the league.
//
// Teams with zero counted weeks are dropped before anything is averaged. The league
// averages are the mean of the per-team averages. An empty input yields an empty
// result and zero averages.
func Classify(aggs []TeamAggregate) ([]ClassifiedTeam, Averages) {
	teams := make([]ClassifiedTeam, 0, len(aggs))
	for _, a := range aggs {
		if a.Weeks <= 0 {
			continue
		}
		w := float64(a.Weeks)
		teams = append(teams, ClassifiedTeam{
			RosterID:        a.RosterID,
			Name:            a.Name,
			ProjectedPoints: a.TotalProjected / w,
			ScoredPoints:    a.TotalScored / w,
			TotalProjected:  a.TotalProjected,
			TotalScored:     a.TotalScored,
			Weeks:           a.Weeks,
		})
	}
	if len(teams) == 0 {
		return teams, Averages{}
	}

	avg := LeagueAverages(teams)
	for i := range teams {
		teams[i].Quadrant = model.QuadrantFor(teams[i].ScoredPoints, teams[i].ProjectedPoints, avg.Scored, avg.Projected)
	}
	return teams, avg
}

// LeagueAverages is the mean of the teams' per-week averages.
func LeagueAverages(teams []ClassifiedTeam) Averages {
	if len(teams) == 0 {
		return Averages{}
	}
	var scored, projected float64
	for _, t := range teams {
		scored += t.ScoredPoints
		projected += t.ProjectedPoints
	}
	n := float64(len(teams))
	return Averages{Scored: scored / n, Projected: projected / n}
}
