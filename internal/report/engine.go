package report

import (
	"context"
	"fmt"

	"sleeper-luck/internal/analysis"
	"sleeper-luck/internal/logger"
	"sleeper-luck/internal/model"

	"github.com/sirupsen/logrus"
)

// Fetcher resolves a league id into its raw upstream payloads.
type Fetcher interface {
	FetchLeague(ctx context.Context, leagueID string) (*model.LeagueSnapshot, error)
}

type Engine struct {
	fetcher Fetcher
}

func New(f Fetcher) *Engine { return &Engine{fetcher: f} }

// Run fetches a league and classifies every team in it.
func (e *Engine) Run(ctx context.Context, leagueID string) (*Report, error) {
	if e.fetcher == nil {
		return nil, fmt.Errorf("fetcher is nil")
	}

	snap, err := e.fetcher.FetchLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	r, err := Build(snap)
	if err != nil {
		return nil, err
	}

	counts := analysis.CountByQuadrant(r.Teams)
	logger.WithLeague(leagueID).WithFields(logrus.Fields{
		"teams":         len(r.Teams),
		"good":          counts[model.QuadrantGood],
		"lucky":         counts[model.QuadrantLucky],
		"unlucky":       counts[model.QuadrantUnlucky],
		"bad":           counts[model.QuadrantBad],
		"avg_scored":    r.Averages.Scored,
		"avg_projected": r.Averages.Projected,
	}).Info("League classified")

	return r, nil
}

// Build runs aggregation and classification over an already-fetched snapshot.
func Build(snap *model.LeagueSnapshot) (*Report, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}

	rosters := analysis.TeamNames(snap.Rosters, snap.Users)
	teams, avg := analysis.Classify(analysis.Aggregate(rosters, snap.Matchups))

	leagueID := snap.LeagueID
	if leagueID == "" {
		leagueID = snap.League.LeagueID
	}

	return &Report{
		LeagueID: leagueID,
		League: LeagueInfo{
			Name:         snap.League.Name,
			Season:       snap.League.Season,
			TotalRosters: snap.League.TotalRosters,
		},
		Teams:    teams,
		Averages: avg,
	}, nil
}
