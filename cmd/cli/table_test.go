package main

import (
	"bytes"
	"strings"
	"testing"

	"sleeper-luck/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintReport_Demo(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, report.Demo())
	out := buf.String()

	assert.Contains(t, out, "Demo League")
	assert.Contains(t, out, "Season 2024 • 10 teams")
	assert.Contains(t, out, "Team Alpha")
	assert.Contains(t, out, "142.3")
	assert.Contains(t, out, "+16.5")
	assert.Contains(t, out, "League average")
	assert.Contains(t, out, "High Scored, Low Projected")
	assert.Less(t, strings.Index(out, "Team Alpha"), strings.Index(out, "Team Delta"))
}

func TestPrintReport_FooterAlignedWithColumns(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, report.Demo())

	var footer string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "League average") {
			footer = line
		}
	}
	require.NotEmpty(t, footer)
	// "Avg Scored" is ten wide, so a right-aligned 125.0 is padded on the left.
	assert.Contains(t, footer, "      125.0 │")
	assert.Contains(t, footer, "      125.3 │")
}

func TestPrintReport_NoTeams(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &report.Report{League: report.LeagueInfo{Name: "Empty", Season: "2025", TotalRosters: 12}})

	assert.Contains(t, buf.String(), "No completed weeks")
	assert.NotContains(t, buf.String(), "League average")
}

func TestAnalyzeCmd_Validate(t *testing.T) {
	assert.Error(t, (&analyzeCmd{}).Validate())
	assert.NoError(t, (&analyzeCmd{League: "1"}).Validate())
	assert.NoError(t, (&analyzeCmd{Data: "snap.json"}).Validate())
}
