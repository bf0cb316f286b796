package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// WriteReportCSV writes one row per team, in ranked order, to path.
func WriteReportCSV(path string, r *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteCSV(f, r)
}

func WriteCSV(out io.Writer, r *Report) error {
	w := csv.NewWriter(out)

	header := []string{
		"rank",
		"roster_id",
		"name",
		"quadrant",
		"scored_avg",
		"projected_avg",
		"total_scored",
		"total_projected",
		"weeks",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, t := range r.Ranked() {
		row := []string{
			strconv.Itoa(t.Rank),
			strconv.Itoa(t.RosterID),
			t.Name,
			string(t.Quadrant),
			fmtFloat(t.ScoredPoints),
			fmtFloat(t.ProjectedPoints),
			fmtFloat(t.TotalScored),
			fmtFloat(t.TotalProjected),
			strconv.Itoa(t.Weeks),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
