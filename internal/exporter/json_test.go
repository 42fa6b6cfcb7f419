package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridstats/pkg/contracts/domain"
)

func sampleReport() domain.Report {
	return domain.Report{
		Summary: domain.SummarySection{
			GamesPlayed:   3,
			Wins:          2,
			Losses:        1,
			WinPercentage: 0.667,
		},
		Scoring: domain.ScoringSection{
			AvgPointsScored:   22.7,
			AvgPointsAllowed:  21.3,
			PointDifferential: 1.3,
		},
		Offense: domain.OffenseSection{
			AvgRushingYards: 116.7,
			AvgPassingYards: 200.0,
			AvgTotalYards:   316.7,
		},
		Turnovers: domain.TurnoverSection{
			TotalTurnovers: 4,
			AvgTurnovers:   1.33,
		},
		HomeAway: domain.HomeAwaySection{
			HomeRecord: domain.WinLossRecord{Wins: 2},
			AwayRecord: domain.WinLossRecord{Losses: 1},
		},
	}
}

func TestReportWriter_WriteJSON(t *testing.T) {
	ctx := context.Background()
	writer := NewReportWriter(slog.Default())

	path := filepath.Join(t.TempDir(), "nested", "season_report.json")
	require.NoError(t, writer.WriteJSON(ctx, path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleReport(), decoded)
}

func TestReportWriter_WriteJSON_Shape(t *testing.T) {
	ctx := context.Background()
	writer := NewReportWriter(nil)

	path := filepath.Join(t.TempDir(), "season_report.json")
	require.NoError(t, writer.WriteJSON(ctx, path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))

	// Exactly the five report sections at the top level
	assert.Len(t, top, 5)
	for _, key := range []string{"summary", "scoring", "offense", "turnovers", "home_away"} {
		assert.Contains(t, top, key)
	}

	// Numeric fields are numbers, not strings
	var summary map[string]json.Number
	require.NoError(t, json.Unmarshal(top["summary"], &summary))
	assert.Equal(t, json.Number("3"), summary["games_played"])
	assert.Equal(t, json.Number("0.667"), summary["win_percentage"])

	var homeAway map[string]map[string]int
	require.NoError(t, json.Unmarshal(top["home_away"], &homeAway))
	assert.Equal(t, 2, homeAway["home_record"]["wins"])
	assert.Equal(t, 0, homeAway["home_record"]["losses"])
	assert.Equal(t, 1, homeAway["away_record"]["losses"])
}

func TestReportWriter_WriteJSON_OmitsTotalsByDefault(t *testing.T) {
	ctx := context.Background()
	writer := NewReportWriter(slog.Default())

	path := filepath.Join(t.TempDir(), "season_report.json")
	require.NoError(t, writer.WriteJSON(ctx, path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "total_points_scored")
	assert.NotContains(t, string(data), "total_yards")
}

func TestReportWriter_WriteJSON_EmptySeason(t *testing.T) {
	ctx := context.Background()
	writer := NewReportWriter(slog.Default())

	path := filepath.Join(t.TempDir(), "season_report.json")
	require.NoError(t, writer.WriteJSON(ctx, path, domain.Report{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))
	assert.Len(t, top, 5)

	var summary map[string]json.Number
	require.NoError(t, json.Unmarshal(top["summary"], &summary))
	assert.Equal(t, json.Number("0"), summary["games_played"])
	assert.Equal(t, json.Number("0"), summary["win_percentage"])
}

func TestReportWriter_WriteJSON_BadPath(t *testing.T) {
	ctx := context.Background()
	writer := NewReportWriter(slog.Default())

	// Parent "directory" is a regular file
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := writer.WriteJSON(ctx, filepath.Join(blocker, "report.json"), sampleReport())
	require.Error(t, err)
}
