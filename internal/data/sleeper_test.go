package data

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sleeper-luck/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSleeper serves a canned league with playoffs starting in week 4, so weeks 1..3
// are requested.
func stubSleeper(t *testing.T, overrides map[string]string) (*httptest.Server, *int32) {
	t.Helper()

	bodies := map[string]string{
		"/league/123":            `{"league_id":"123","name":"Test League","season":"2024","total_rosters":2,"settings":{"playoff_week_start":4}}`,
		"/league/123/users":      `[{"user_id":"u1","display_name":"Alice"},{"user_id":"u2","display_name":"Bob"}]`,
		"/league/123/rosters":    `[{"roster_id":1,"owner_id":"u1"},{"roster_id":2,"owner_id":"u2"}]`,
		"/league/123/matchups/1": `[{"roster_id":1,"points":100,"points_bonus_projection":95},{"roster_id":2,"points":90,"points_bonus_projection":105}]`,
		"/league/123/matchups/2": `[{"roster_id":1,"points":110,"points_bonus_projection":100},{"roster_id":2,"points":80,"points_bonus_projection":100}]`,
		"/league/123/matchups/3": `[]`,
	}
	for k, v := range overrides {
		bodies[k] = v
	}

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if body == "500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestClient(baseURL string) *SleeperClient {
	c := NewSleeperClient(baseURL, 5*time.Second)
	c.Log = logger.Discard().WithField("service", "sleeper")
	return c
}

func TestNewSleeperClient_Defaults(t *testing.T) {
	c := NewSleeperClient("", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, 30*time.Second, c.Client.Timeout)
	assert.Nil(t, c.Cache)
}

func TestFetchLeague(t *testing.T) {
	srv, hits := stubSleeper(t, nil)
	c := newTestClient(srv.URL)

	snap, err := c.FetchLeague(context.Background(), "123")
	require.NoError(t, err)

	assert.Equal(t, "123", snap.LeagueID)
	assert.Equal(t, "Test League", snap.League.Name)
	assert.Len(t, snap.Users, 2)
	assert.Len(t, snap.Rosters, 2)
	require.Len(t, snap.Matchups, 3)
	assert.Len(t, snap.Matchups[0], 2)
	assert.Len(t, snap.Matchups[1], 2)
	assert.Empty(t, snap.Matchups[2])
	// league + users + rosters + 3 weeks
	assert.Equal(t, int32(6), atomic.LoadInt32(hits))
}

func TestFetchLeague_CapsWeeks(t *testing.T) {
	overrides := map[string]string{
		"/league/123": `{"league_id":"123","name":"Long","season":"2024","total_rosters":2,"settings":{"playoff_week_start":30}}`,
	}
	for w := 3; w <= 18; w++ {
		overrides[fmt.Sprintf("/league/123/matchups/%d", w)] = `[]`
	}
	srv, _ := stubSleeper(t, overrides)

	snap, err := newTestClient(srv.URL).FetchLeague(context.Background(), "123")
	require.NoError(t, err)
	assert.Len(t, snap.Matchups, 18)
}

func TestFetchLeague_NoPlayoffStart(t *testing.T) {
	srv, hits := stubSleeper(t, map[string]string{
		"/league/123": `{"league_id":"123","name":"Odd","season":"2024","total_rosters":2,"settings":{}}`,
	})

	snap, err := newTestClient(srv.URL).FetchLeague(context.Background(), "123")
	require.NoError(t, err)
	assert.Empty(t, snap.Matchups)
	assert.Equal(t, int32(3), atomic.LoadInt32(hits))
}

func TestFetchLeague_LeagueNotFound(t *testing.T) {
	srv, _ := stubSleeper(t, nil)

	_, err := newTestClient(srv.URL).FetchLeague(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsLeagueNotFound(err))
	assert.Equal(t, "League not found", err.Error())

	var sErr *SleeperError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, http.StatusNotFound, sErr.StatusCode)
}

func TestFetchLeague_NullLeague(t *testing.T) {
	srv, _ := stubSleeper(t, map[string]string{"/league/123": `null`})

	_, err := newTestClient(srv.URL).FetchLeague(context.Background(), "123")
	require.Error(t, err)
	assert.True(t, IsLeagueNotFound(err))
}

func TestFetchLeague_EmptyID(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:0").FetchLeague(context.Background(), "")
	require.Error(t, err)
}

func TestFetchLeague_RosterFailureIsFatal(t *testing.T) {
	srv, _ := stubSleeper(t, map[string]string{"/league/123/rosters": "500"})

	_, err := newTestClient(srv.URL).FetchLeague(context.Background(), "123")
	require.Error(t, err)
	assert.False(t, IsLeagueNotFound(err))
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchLeague_WeekFailureIsFatal(t *testing.T) {
	srv, _ := stubSleeper(t, map[string]string{"/league/123/matchups/2": "500"})

	_, err := newTestClient(srv.URL).FetchLeague(context.Background(), "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "week 2")
}

func TestFetchLeague_MalformedWeekIsSkipped(t *testing.T) {
	srv, _ := stubSleeper(t, map[string]string{"/league/123/matchups/2": `{"error":"oops"}`})

	snap, err := newTestClient(srv.URL).FetchLeague(context.Background(), "123")
	require.NoError(t, err)
	assert.Nil(t, snap.Matchups[1])
	assert.Len(t, snap.Matchups[0], 2)
}

func TestFetchLeague_NullUsersAndRosters(t *testing.T) {
	srv, _ := stubSleeper(t, map[string]string{
		"/league/123/users":   `null`,
		"/league/123/rosters": `null`,
	})

	snap, err := newTestClient(srv.URL).FetchLeague(context.Background(), "123")
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Rosters)
}

func TestFetchLeague_CanceledContext(t *testing.T) {
	srv, _ := stubSleeper(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).FetchLeague(ctx, "123")
	require.Error(t, err)
}

func TestGetMatchups_DropsMalformedRecords(t *testing.T) {
	srv, _ := stubSleeper(t, map[string]string{
		"/league/123/matchups/1": `[{"roster_id":1,"points":100,"points_bonus_projection":95},{"roster_id":"nope"},{"roster_id":2,"points":null}]`,
	})

	got, err := newTestClient(srv.URL).GetMatchups(context.Background(), "123", 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].RosterID)
	assert.Equal(t, 2, got[1].RosterID)
	assert.Nil(t, got[1].Points)
}

func TestGetMatchups_InvalidJSON(t *testing.T) {
	srv, _ := stubSleeper(t, map[string]string{"/league/123/matchups/1": `[{`})

	_, err := newTestClient(srv.URL).GetMatchups(context.Background(), "123", 1)
	require.Error(t, err)
}

func TestSleeperClient_UsesCache(t *testing.T) {
	srv, hits := stubSleeper(t, nil)
	c := newTestClient(srv.URL)
	c.Cache = NewResponseCache(time.Minute)

	_, err := c.FetchLeague(context.Background(), "123")
	require.NoError(t, err)
	_, err = c.FetchLeague(context.Background(), "123")
	require.NoError(t, err)

	assert.Equal(t, int32(6), atomic.LoadInt32(hits))
	assert.Equal(t, 6, c.Cache.Len())
}
