package main

import (
	"context"
	"fmt"

	"sleeper-luck/internal/data"
)

type snapshotCmd struct {
	League string `help:"Sleeper league ID." short:"l" required:""`
	Out    string `help:"Output JSON path." type:"path" required:""`
}

func (s *snapshotCmd) Run(g *globalCmd) error {
	client, err := g.client()
	if err != nil {
		return err
	}

	snap, err := client.FetchLeague(context.Background(), s.League)
	if err != nil {
		return err
	}
	if err := data.SaveSnapshot(snap, s.Out); err != nil {
		return err
	}

	fmt.Printf("Saved %s (%s %s): %d rosters, %d weeks -> %s\n",
		snap.League.Name, snap.League.Season, snap.LeagueID, len(snap.Rosters), len(snap.Matchups), s.Out)
	return nil
}
