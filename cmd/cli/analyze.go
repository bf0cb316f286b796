package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sleeper-luck/internal/data"
	"sleeper-luck/internal/report"
)

type analyzeCmd struct {
	League string `help:"Sleeper league ID." short:"l" xor:"source"`
	Data   string `help:"Analyze a saved snapshot instead of calling the API." type:"existingfile" xor:"source"`
	Out    string `help:"Optional path to write the report as CSV." type:"path"`
}

func (a *analyzeCmd) Validate() error {
	if a.League == "" && a.Data == "" {
		return errors.New("one of --league or --data is required")
	}
	return nil
}

func (a *analyzeCmd) Run(g *globalCmd) error {
	r, err := a.load(g)
	if err != nil {
		return err
	}

	printReport(os.Stdout, r)

	if a.Out != "" {
		if err := report.WriteReportCSV(a.Out, r); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("wrote %s\n", a.Out)
	}
	return nil
}

func (a *analyzeCmd) load(g *globalCmd) (*report.Report, error) {
	if a.Data != "" {
		snap, err := data.LoadSnapshot(a.Data)
		if err != nil {
			return nil, err
		}
		return report.Build(snap)
	}

	client, err := g.client()
	if err != nil {
		return nil, err
	}
	return report.New(client).Run(context.Background(), a.League)
}
