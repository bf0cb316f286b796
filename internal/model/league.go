package model

// MaxRegularSeasonWeek caps the number of weeks fetched for a season, regardless of
// when the league's playoffs start.
const MaxRegularSeasonWeek = 18

// League matches the JSON shape of GET /league/{league_id}.
//
// Example:
//
//	{
//	  "league_id": "1048283140339347456",
//	  "name": "Dynasty Degens",
//	  "season": "2024",
//	  "total_rosters": 12,
//	  "settings": { "playoff_week_start": 15, ... }
//	}
type League struct {
	LeagueID     string         `json:"league_id"`
	Name         string         `json:"name"`
	Season       string         `json:"season"`
	Sport        string         `json:"sport,omitempty"`
	Status       string         `json:"status,omitempty"`
	TotalRosters int            `json:"total_rosters"`
	Settings     LeagueSettings `json:"settings"`
}

// LeagueSettings holds the subset of league settings the analyzer reads.
type LeagueSettings struct {
	PlayoffWeekStart int `json:"playoff_week_start"`
}

// RegularSeasonWeeks returns how many weeks of matchups count toward the season:
// every week before the playoffs start, capped at MaxRegularSeasonWeek.
// Leagues without a playoff start yield zero weeks.
func (l League) RegularSeasonWeeks() int {
	weeks := l.Settings.PlayoffWeekStart - 1
	if weeks > MaxRegularSeasonWeek {
		weeks = MaxRegularSeasonWeek
	}
	if weeks < 0 {
		return 0
	}
	return weeks
}

// User is one member of a league (GET /league/{league_id}/users).
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// Roster is one team in a league (GET /league/{league_id}/rosters).
// OwnerID is null for orphaned rosters.
type Roster struct {
	RosterID int     `json:"roster_id"`
	OwnerID  *string `json:"owner_id"`
}

// Matchup is one roster's result for a week (GET /league/{league_id}/matchups/{week}).
// Points and PointsBonusProjection are pointers because Sleeper omits or nulls them
// for weeks that have not been played.
type Matchup struct {
	RosterID              int      `json:"roster_id"`
	MatchupID             *int     `json:"matchup_id,omitempty"`
	Points                *float64 `json:"points"`
	PointsBonusProjection *float64 `json:"points_bonus_projection"`
}

// Counted reports whether the record contributes to season totals. Both points and
// projection must be present and non-zero.
func (m Matchup) Counted() (points, projected float64, ok bool) {
	if !truthy(m.Points) || !truthy(m.PointsBonusProjection) {
		return 0, 0, false
	}
	return *m.Points, *m.PointsBonusProjection, true
}

func truthy(v *float64) bool {
	// NaN != NaN, so this also rejects NaN.
	return v != nil && *v != 0 && *v == *v
}
