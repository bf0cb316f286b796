package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularSeasonWeeks(t *testing.T) {
	tests := []struct {
		playoffStart int
		want         int
	}{
		{15, 14},
		{18, 17},
		{19, 18},
		{25, 18},
		{1, 0},
		{0, 0},
	}
	for _, tt := range tests {
		l := League{Settings: LeagueSettings{PlayoffWeekStart: tt.playoffStart}}
		assert.Equal(t, tt.want, l.RegularSeasonWeeks(), "playoff_week_start=%d", tt.playoffStart)
	}
}

func TestMatchupCounted(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	pts, proj, ok := Matchup{Points: f(101.5), PointsBonusProjection: f(98.2)}.Counted()
	require.True(t, ok)
	assert.Equal(t, 101.5, pts)
	assert.Equal(t, 98.2, proj)

	for name, m := range map[string]Matchup{
		"missing points":     {PointsBonusProjection: f(98)},
		"missing projection": {Points: f(101)},
		"zero points":        {Points: f(0), PointsBonusProjection: f(98)},
		"zero projection":    {Points: f(101), PointsBonusProjection: f(0)},
		"NaN points":         {Points: f(math.NaN()), PointsBonusProjection: f(98)},
	} {
		_, _, ok := m.Counted()
		assert.False(t, ok, name)
	}
}

func TestMatchupDecodeNulls(t *testing.T) {
	var ms []Matchup
	raw := `[{"roster_id":1,"points":null,"points_bonus_projection":90.5},{"roster_id":2,"matchup_id":3}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &ms))
	require.Len(t, ms, 2)
	assert.Nil(t, ms[0].Points)
	assert.Equal(t, 90.5, *ms[0].PointsBonusProjection)
	assert.Nil(t, ms[1].Points)
	assert.Equal(t, 3, *ms[1].MatchupID)
}
