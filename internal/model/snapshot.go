package model

import "time"

// LeagueSnapshot bundles every upstream payload needed to analyse one league.
//
// Matchups is indexed by week-1. A nil entry means the upstream returned something
// other than a list for that week; the week is skipped during aggregation.
type LeagueSnapshot struct {
	LeagueID  string      `json:"league_id"`
	FetchedAt time.Time   `json:"fetched_at"`
	League    League      `json:"league"`
	Users     []User      `json:"users"`
	Rosters   []Roster    `json:"rosters"`
	Matchups  [][]Matchup `json:"matchups"`
}
