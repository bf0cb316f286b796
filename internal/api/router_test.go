package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sleeper-luck/internal/data"
	"sleeper-luck/internal/logger"
	"sleeper-luck/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Logger = logger.Discard()
}

type panicRunner struct{}

func (panicRunner) Run(context.Context, string) (*report.Report, error) {
	panic("kaboom")
}

// stubUpstream serves a two-team league whose regular season is two weeks long.
func stubUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	bodies := map[string]string{
		"/league/42":            `{"league_id":"42","name":"Stub","season":"2024","total_rosters":2,"settings":{"playoff_week_start":3}}`,
		"/league/42/users":      `[{"user_id":"u1","display_name":"A"},{"user_id":"u2","display_name":"B"}]`,
		"/league/42/rosters":    `[{"roster_id":1,"owner_id":"u1"},{"roster_id":2,"owner_id":"u2"}]`,
		"/league/42/matchups/1": `[{"roster_id":1,"points":100,"points_bonus_projection":100},{"roster_id":2,"points":90,"points_bonus_projection":95}]`,
		"/league/42/matchups/2": `[{"roster_id":1,"points":110,"points_bonus_projection":110},{"roster_id":2,"points":85,"points_bonus_projection":95}]`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) *gin.Engine {
	client := data.NewSleeperClient(stubUpstream(t).URL, 5*time.Second)
	return NewRouter(Options{Runner: report.New(client)})
}

func get(router http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	w := get(newTestRouter(t), "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	w := get(newTestRouter(t), "/health", http.Header{"X-Request-Id": {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRouter_LeagueEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/sleeper?leagueId=42", "/api/v1/league?leagueId=42"} {
		w := get(router, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{
			"teamData": [
				{"name":"A","projectedPoints":105,"scoredPoints":105,"totalProjected":210,"totalScored":210,"weeks":2,"quadrant":"Good Teams"},
				{"name":"B","projectedPoints":95,"scoredPoints":87.5,"totalProjected":190,"totalScored":175,"weeks":2,"quadrant":"Bad Teams"}
			],
			"leagueInfo": {"name":"Stub","season":"2024","total_rosters":2},
			"leagueAverages": {"scored":96.25,"projected":100}
		}`, w.Body.String(), path)
	}
}

func TestRouter_LeagueNotFound(t *testing.T) {
	w := get(newTestRouter(t), "/api/sleeper?leagueId=missing", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"LEAGUE_NOT_FOUND"`)
	assert.Contains(t, w.Body.String(), `"message":"League not found"`)
}

func TestRouter_MissingLeagueID(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/api/sleeper", "/api/v1/league"} {
		w := get(router, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		// The unversioned alias shares the nested error object; error is not a bare string.
		assert.JSONEq(t, `{"error":{"code":"INVALID_REQUEST","message":"League ID is required"}}`, w.Body.String(), path)
	}
}

func TestRouter_DemoAndQuadrants(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/api/demo", "/api/v1/demo", "/api/v1/demo/rankings", "/api/v1/quadrants"} {
		w := get(router, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_Page(t *testing.T) {
	w := get(newTestRouter(t), "/?leagueId=42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Stub")
	assert.Contains(t, w.Body.String(), "<svg")
}

func TestRouter_NoRoute(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")

	w = get(router, "/somewhere", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRouter_RecoversPanics(t *testing.T) {
	router := NewRouter(Options{Runner: panicRunner{}})

	w := get(router, "/api/sleeper?leagueId=1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"kaboom"}}`, w.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	router := NewRouter(Options{Runner: panicRunner{}, CORSOrigins: []string{"http://allowed.test"}})

	w := get(router, "/api/demo", http.Header{"Origin": {"http://allowed.test"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://allowed.test", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(router, "/api/demo", http.Header{"Origin": {"http://other.test"}})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	pre := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/demo", nil)
	req.Header.Set("Origin", "http://allowed.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	router.ServeHTTP(pre, req)
	assert.Equal(t, http.StatusNoContent, pre.Code)
	assert.Equal(t, "http://allowed.test", pre.Header().Get("Access-Control-Allow-Origin"))
}
