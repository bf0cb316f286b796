package main

import (
	"fmt"
	"io"

	"sleeper-luck/internal/analysis"
	"sleeper-luck/internal/model"
	"sleeper-luck/internal/report"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// printReport renders the ranked teams followed by a quadrant summary.
func printReport(out io.Writer, r *report.Report) {
	fmt.Fprintf(out, "%s\nSeason %s • %d teams\n\n", r.League.Name, r.League.Season, r.League.TotalRosters)
	if len(r.Teams) == 0 {
		fmt.Fprintln(out, "No completed weeks with both scored and projected points yet.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Team", "Avg Scored", "Avg Projected", "Diff", "Weeks", "Quadrant"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	for _, team := range r.Ranked() {
		t.AppendRow(table.Row{
			team.Rank,
			team.Name,
			fmt.Sprintf("%0.1f", team.ScoredPoints),
			fmt.Sprintf("%0.1f", team.ProjectedPoints),
			fmt.Sprintf("%+0.1f", team.ScoredPoints-team.ProjectedPoints),
			team.Weeks,
			team.Quadrant,
		})
	}
	t.AppendFooter(table.Row{"", "League average",
		fmt.Sprintf("%0.1f", r.Averages.Scored),
		fmt.Sprintf("%0.1f", r.Averages.Projected),
		"", "", ""})
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.Render()

	printQuadrantSummary(out, r.Teams)
}

func printQuadrantSummary(out io.Writer, teams []analysis.ClassifiedTeam) {
	counts := analysis.CountByQuadrant(teams)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Quadrant", "Teams", "Meaning"})
	for _, q := range model.Quadrants {
		t.AppendRow(table.Row{q, counts[q], q.Description()})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
