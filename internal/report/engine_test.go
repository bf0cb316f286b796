package report

import (
	"context"
	"errors"
	"testing"

	"sleeper-luck/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	snap *model.LeagueSnapshot
	err  error
	got  string
}

func (f *fakeFetcher) FetchLeague(_ context.Context, leagueID string) (*model.LeagueSnapshot, error) {
	f.got = leagueID
	return f.snap, f.err
}

func pf(v float64) *float64 { return &v }
func sp(s string) *string   { return &s }

func twoTeamSnapshot() *model.LeagueSnapshot {
	return &model.LeagueSnapshot{
		LeagueID: "123",
		League: model.League{
			LeagueID:     "123",
			Name:         "Test League",
			Season:       "2024",
			TotalRosters: 2,
			Settings:     model.LeagueSettings{PlayoffWeekStart: 3},
		},
		Users: []model.User{{UserID: "u1", DisplayName: "A"}, {UserID: "u2", DisplayName: "B"}},
		Rosters: []model.Roster{
			{RosterID: 1, OwnerID: sp("u1")},
			{RosterID: 2, OwnerID: sp("u2")},
		},
		Matchups: [][]model.Matchup{
			{
				{RosterID: 1, Points: pf(100), PointsBonusProjection: pf(95)},
				{RosterID: 2, Points: pf(90), PointsBonusProjection: pf(105)},
			},
			{
				{RosterID: 1, Points: pf(110), PointsBonusProjection: pf(100)},
				{RosterID: 2, Points: pf(80), PointsBonusProjection: pf(100)},
			},
		},
	}
}

func TestEngineRun_TwoTeams(t *testing.T) {
	f := &fakeFetcher{snap: twoTeamSnapshot()}

	r, err := New(f).Run(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "123", f.got)

	assert.Equal(t, LeagueInfo{Name: "Test League", Season: "2024", TotalRosters: 2}, r.League)
	require.Len(t, r.Teams, 2)
	assert.InDelta(t, 95.0, r.Averages.Scored, 1e-9)
	assert.InDelta(t, 100.0, r.Averages.Projected, 1e-9)

	a, b := r.Teams[0], r.Teams[1]
	assert.Equal(t, "A", a.Name)
	assert.InDelta(t, 105.0, a.ScoredPoints, 1e-9)
	assert.InDelta(t, 97.5, a.ProjectedPoints, 1e-9)
	assert.Equal(t, model.QuadrantLucky, a.Quadrant)

	assert.Equal(t, "B", b.Name)
	assert.InDelta(t, 85.0, b.ScoredPoints, 1e-9)
	assert.InDelta(t, 102.5, b.ProjectedPoints, 1e-9)
	assert.Equal(t, model.QuadrantUnlucky, b.Quadrant)
	assert.Equal(t, 2, b.Weeks)
	assert.False(t, r.Demo)
}

func TestEngineRun_PropagatesFetchError(t *testing.T) {
	want := errors.New("boom")
	_, err := New(&fakeFetcher{err: want}).Run(context.Background(), "123")
	assert.ErrorIs(t, err, want)
}

func TestEngineRun_NilFetcher(t *testing.T) {
	_, err := New(nil).Run(context.Background(), "123")
	assert.Error(t, err)
}

func TestBuild_NoCountedWeeks(t *testing.T) {
	snap := twoTeamSnapshot()
	snap.Matchups = nil

	r, err := Build(snap)
	require.NoError(t, err)
	assert.NotNil(t, r.Teams)
	assert.Empty(t, r.Teams)
	assert.Zero(t, r.Averages.Scored)
	assert.Zero(t, r.Averages.Projected)
}

func TestBuild_Nil(t *testing.T) {
	_, err := Build(nil)
	assert.Error(t, err)
}

func TestReportRanked(t *testing.T) {
	r, err := Build(twoTeamSnapshot())
	require.NoError(t, err)

	ranked := r.Ranked()
	require.Len(t, ranked, 2)
	assert.Equal(t, "A", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)

	var nilReport *Report
	assert.Nil(t, nilReport.Ranked())
}
