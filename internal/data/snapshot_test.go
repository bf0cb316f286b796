package data

import (
	"path/filepath"
	"testing"
	"time"

	"sleeper-luck/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	pts, proj := 101.5, 99.0
	owner := "u1"
	snap := &model.LeagueSnapshot{
		LeagueID:  "123",
		FetchedAt: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		League:    model.League{LeagueID: "123", Name: "Test", Season: "2024", TotalRosters: 1, Settings: model.LeagueSettings{PlayoffWeekStart: 3}},
		Users:     []model.User{{UserID: "u1", DisplayName: "Alice"}},
		Rosters:   []model.Roster{{RosterID: 1, OwnerID: &owner}},
		Matchups: [][]model.Matchup{
			{{RosterID: 1, Points: &pts, PointsBonusProjection: &proj}},
			nil,
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "snap.json")
	require.NoError(t, SaveSnapshot(snap, path))

	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestLoadSnapshot_Errors(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	assert.Error(t, SaveSnapshot(nil, filepath.Join(t.TempDir(), "x.json")))
}
