package web

import "sleeper-luck/internal/report"

// PageData is everything the index page needs.
type PageData struct {
	// LeagueID echoes the submitted id back into the form.
	LeagueID string
	// Report is nil until a league or the demo has been loaded.
	Report *report.Report
	// Error is shown in a banner above the results.
	Error string
}
