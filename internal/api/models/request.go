package models

// LeagueRequest is the query string accepted by the league endpoints.
type LeagueRequest struct {
	LeagueID string `form:"leagueId"`
}
