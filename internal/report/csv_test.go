package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	r, err := Build(twoTeamSnapshot())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, r))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "rank", rows[0][0])
	assert.Equal(t, []string{"1", "1", "A", "Lucky Teams", "105.00", "97.50", "210.00", "195.00", "2"}, rows[1])
	assert.Equal(t, []string{"2", "2", "B", "Unlucky Teams", "85.00", "102.50", "170.00", "205.00", "2"}, rows[2])
}

func TestWriteReportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, WriteReportCSV(path, Demo()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 11)
	assert.Equal(t, "Team Alpha", rows[1][2])
}
