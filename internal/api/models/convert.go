package models

import (
	"sleeper-luck/internal/model"
	"sleeper-luck/internal/report"
)

// FromReport converts a report into the JSON body served to clients.
func FromReport(r *report.Report) LeagueResponse {
	teams := make([]TeamData, 0, len(r.Teams))
	for _, t := range r.Teams {
		teams = append(teams, TeamData{
			Name:            t.Name,
			ProjectedPoints: t.ProjectedPoints,
			ScoredPoints:    t.ScoredPoints,
			TotalProjected:  t.TotalProjected,
			TotalScored:     t.TotalScored,
			Weeks:           t.Weeks,
			Quadrant:        string(t.Quadrant),
		})
	}
	return LeagueResponse{
		TeamData:   teams,
		LeagueInfo: leagueInfo(r.League),
		LeagueAverages: LeagueAverages{
			Scored:    r.Averages.Scored,
			Projected: r.Averages.Projected,
		},
	}
}

// RankingsFromReport orders a report's teams by average scored points.
func RankingsFromReport(r *report.Report) RankingsResponse {
	ranked := r.Ranked()
	out := RankingsResponse{
		LeagueInfo: leagueInfo(r.League),
		Rankings:   make([]Ranking, 0, len(ranked)),
		Counts:     make(map[string]int, len(model.Quadrants)),
	}
	for _, q := range model.Quadrants {
		out.Counts[string(q)] = 0
	}
	for _, t := range ranked {
		out.Rankings = append(out.Rankings, Ranking{
			Rank:            t.Rank,
			Name:            t.Name,
			ScoredPoints:    t.ScoredPoints,
			ProjectedPoints: t.ProjectedPoints,
			Quadrant:        string(t.Quadrant),
		})
		out.Counts[string(t.Quadrant)]++
	}
	return out
}

// QuadrantInfos lists every quadrant in display order.
func QuadrantInfos() []QuadrantInfo {
	out := make([]QuadrantInfo, 0, len(model.Quadrants))
	for _, q := range model.Quadrants {
		out = append(out, QuadrantInfo{
			Name:        string(q),
			Color:       q.Color(),
			Description: q.Description(),
		})
	}
	return out
}

func leagueInfo(l report.LeagueInfo) LeagueInfo {
	return LeagueInfo{
		Name:         l.Name,
		Season:       l.Season,
		TotalRosters: l.TotalRosters,
	}
}

// NewError builds an error body.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
