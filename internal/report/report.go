package report

import (
	"sleeper-luck/internal/analysis"
)

// LeagueInfo is the league metadata shown above a report.
type LeagueInfo struct {
	Name         string
	Season       string
	TotalRosters int
}

// Report is the classified output for one league.
// This is the primary artifact for "how lucky was everyone" in a season.
type Report struct {
	LeagueID string
	League   LeagueInfo

	// Teams are in roster order; only teams with at least one counted week appear.
	Teams    []analysis.ClassifiedTeam
	Averages analysis.Averages

	// Demo marks the static sample report.
	Demo bool
}

// Ranked returns the report's teams ordered by average points scored, best first.
func (r *Report) Ranked() []analysis.RankedTeam {
	if r == nil {
		return nil
	}
	return analysis.RankByScored(r.Teams)
}
