package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sleeper-luck/internal/logger"
	"sleeper-luck/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the public Sleeper API host.
const DefaultBaseURL = "https://api.sleeper.app/v1"

// SleeperClient fetches league data from the Sleeper API. All calls are read-only and
// unauthenticated.
type SleeperClient struct {
	BaseURL string
	Client  *http.Client
	// Cache is optional; nil disables response caching.
	Cache *ResponseCache
	Log   *logrus.Entry
}

// NewSleeperClient creates a new Sleeper API client.
// If baseURL is empty, defaults to DefaultBaseURL. A zero timeout defaults to 30s.
func NewSleeperClient(baseURL string, timeout time.Duration) *SleeperClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SleeperClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
		Log: logger.WithService("sleeper"),
	}
}

// SleeperError represents a failed call to the Sleeper API.
type SleeperError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *SleeperError) Error() string {
	return e.Message
}

const (
	CodeLeagueNotFound = "LEAGUE_NOT_FOUND"
	CodeAPIError       = "API_ERROR"
)

// IsLeagueNotFound reports whether err means the league lookup itself failed.
func IsLeagueNotFound(err error) bool {
	var sErr *SleeperError
	return errors.As(err, &sErr) && sErr.Code == CodeLeagueNotFound
}

// GetLeague fetches league metadata. Any failing status, or a null body (Sleeper's
// answer for unknown ids), is reported as a LEAGUE_NOT_FOUND SleeperError.
func (c *SleeperClient) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	body, err := c.get(ctx, "/league/"+url.PathEscape(leagueID))
	if err != nil {
		var sErr *SleeperError
		if errors.As(err, &sErr) {
			return nil, &SleeperError{StatusCode: sErr.StatusCode, Code: CodeLeagueNotFound, Message: "League not found"}
		}
		return nil, err
	}

	var league *model.League
	if err := json.Unmarshal(body, &league); err != nil {
		return nil, fmt.Errorf("failed to decode league: %w", err)
	}
	if league == nil {
		return nil, &SleeperError{StatusCode: http.StatusOK, Code: CodeLeagueNotFound, Message: "League not found"}
	}
	return league, nil
}

// GetUsers fetches the league's members. A null body yields an empty list.
func (c *SleeperClient) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	body, err := c.get(ctx, "/league/"+url.PathEscape(leagueID)+"/users")
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// GetRosters fetches the league's rosters. A null body yields an empty list.
func (c *SleeperClient) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	body, err := c.get(ctx, "/league/"+url.PathEscape(leagueID)+"/rosters")
	if err != nil {
		return nil, err
	}
	var rosters []model.Roster
	if err := json.Unmarshal(body, &rosters); err != nil {
		return nil, fmt.Errorf("failed to decode rosters: %w", err)
	}
	return rosters, nil
}

// GetMatchups fetches one week of matchups.
//
// A well-formed body that is not a list returns (nil, nil) so the caller can skip the
// week. List elements that do not decode as a matchup are dropped.
func (c *SleeperClient) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	path := "/league/" + url.PathEscape(leagueID) + "/matchups/" + strconv.Itoa(week)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeMatchups(body, c.log().WithField("week", week))
}

func decodeMatchups(body []byte, log *logrus.Entry) ([]model.Matchup, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode matchups: %w", err)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		log.Warn("Matchups payload is not a list, skipping week")
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to decode matchups: %w", err)
	}
	out := make([]model.Matchup, 0, len(items))
	for i, item := range items {
		var m model.Matchup
		if err := json.Unmarshal(item, &m); err != nil {
			log.WithError(err).WithField("index", i).Debug("Dropping malformed matchup record")
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// FetchLeague resolves a league id into every payload the analysis needs.
//
// The league lookup runs first; users, rosters and each regular-season week are then
// fetched concurrently. The first failure cancels the rest and is returned.
func (c *SleeperClient) FetchLeague(ctx context.Context, leagueID string) (*model.LeagueSnapshot, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("league_id is required")
	}

	league, err := c.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	weeks := league.RegularSeasonWeeks()
	snap := &model.LeagueSnapshot{
		LeagueID:  leagueID,
		FetchedAt: time.Now().UTC(),
		League:    *league,
		Matchups:  make([][]model.Matchup, weeks),
	}

	c.log().WithFields(logrus.Fields{
		"league_id": leagueID,
		"league":    league.Name,
		"season":    league.Season,
		"weeks":     weeks,
	}).Info("Fetching league data")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := c.GetUsers(gctx, leagueID)
		snap.Users = users
		return err
	})
	g.Go(func() error {
		rosters, err := c.GetRosters(gctx, leagueID)
		snap.Rosters = rosters
		return err
	})
	for week := 1; week <= weeks; week++ {
		g.Go(func() error {
			matchups, err := c.GetMatchups(gctx, leagueID, week)
			if err != nil {
				return fmt.Errorf("week %d: %w", week, err)
			}
			snap.Matchups[week-1] = matchups
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// get issues a GET against BaseURL+path and returns the body of a 200 response.
func (c *SleeperClient) get(ctx context.Context, path string) ([]byte, error) {
	log := c.log().WithField("path", path)

	if c.Cache != nil {
		if cached, found := c.Cache.Get(GenerateCacheKey(c.BaseURL, path)); found {
			log.Debug("Cache hit")
			return cached, nil
		}
	}

	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	duration := time.Since(start)
	if err != nil {
		log.WithError(err).WithField("duration", duration).Warn("Request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": duration,
	}).Debug("Response")

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("Sleeper API returned an error status")
		return nil, &SleeperError{
			StatusCode: resp.StatusCode,
			Code:       CodeAPIError,
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if c.Cache != nil {
		c.Cache.Set(GenerateCacheKey(c.BaseURL, path), body)
		log.WithField("entries", c.Cache.Len()).Debug("Cached response")
	}
	return body, nil
}

func (c *SleeperClient) httpClient() *http.Client {
	if c.Client == nil {
		return http.DefaultClient
	}
	return c.Client
}

func (c *SleeperClient) log() *logrus.Entry {
	if c.Log == nil {
		return logger.WithService("sleeper")
	}
	return c.Log
}
