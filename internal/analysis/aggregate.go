package analysis

import (
	"fmt"

	"sleeper-luck/internal/model"
)

// RosterEntry is a roster paired with the name shown for it.
type RosterEntry struct {
	RosterID int
	Name     string
}

// TeamAggregate holds a team's running season totals.
type TeamAggregate struct {
	RosterID int
	Name     string

	TotalProjected float64
	TotalScored    float64

	// Weeks counts only the weeks that contributed to the totals.
	Weeks int
}

// TeamNames resolves a display name for every roster, in roster order.
// Rosters are named after their owner's display name, or "Team {roster_id}" when the
// owner is unknown. If a user id appears more than once, the first entry wins.
func TeamNames(rosters []model.Roster, users []model.User) []RosterEntry {
	names := make(map[string]string, len(users))
	for _, u := range users {
		if _, seen := names[u.UserID]; seen {
			continue
		}
		names[u.UserID] = u.DisplayName
	}

	out := make([]RosterEntry, 0, len(rosters))
	for _, r := range rosters {
		name := ""
		if r.OwnerID != nil {
			name = names[*r.OwnerID]
		}
		if name == "" {
			name = fmt.Sprintf("Team %d", r.RosterID)
		}
		out = append(out, RosterEntry{RosterID: r.RosterID, Name: name})
	}
	return out
}

// Aggregate folds weekly matchup batches into one TeamAggregate per roster.
//
// Output follows roster order. A nil batch is skipped, records for unknown rosters are
// ignored, and records without both points and projection contribute nothing.
// A roster listed twice keeps its first position and its last name.
func Aggregate(rosters []RosterEntry, weeks [][]model.Matchup) []TeamAggregate {
	out := make([]TeamAggregate, 0, len(rosters))
	index := make(map[int]int, len(rosters))
	for _, r := range rosters {
		if i, ok := index[r.RosterID]; ok {
			out[i].Name = r.Name
			continue
		}
		index[r.RosterID] = len(out)
		out = append(out, TeamAggregate{RosterID: r.RosterID, Name: r.Name})
	}

	for _, batch := range weeks {
		for _, m := range batch {
			i, ok := index[m.RosterID]
			if !ok {
				continue
			}
			points, projected, ok := m.Counted()
			if !ok {
				continue
			}
			out[i].TotalScored += points
			out[i].TotalProjected += projected
			out[i].Weeks++
		}
	}
	return out
}
