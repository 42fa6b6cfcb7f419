package dataprocessing

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "gridstats/internal/errors"
	"gridstats/pkg/contracts/domain"
)

const statsHeader = "game_id,date,opponent,home_away,points_scored,points_allowed,rushing_yards,passing_yards,turnovers,result\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "season.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_LoadCSV(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	csv := statsHeader +
		"1,2025-09-07,Cowboys,home,24,17,120,200,1,W\n" +
		"2,2025-09-14,Giants,away,14,27,80,180,3,L\n"

	result, err := loader.LoadCSV(ctx, writeCSV(t, csv))
	require.NoError(t, err)
	require.Len(t, result.Games, 2)
	assert.Zero(t, result.Skipped)

	got := result.Games[0]
	assert.Equal(t, "1", got.GameID)
	assert.Equal(t, time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, "Cowboys", got.Opponent)
	assert.Equal(t, domain.HomeAwayHome, got.HomeAway)
	assert.Equal(t, 24, got.PointsScored)
	assert.Equal(t, 17, got.PointsAllowed)
	assert.Equal(t, 120, got.RushingYards)
	assert.Equal(t, 200, got.PassingYards)
	assert.Equal(t, 1, got.Turnovers)
	assert.Equal(t, domain.ResultWin, got.Result)

	assert.Equal(t, domain.HomeAwayAway, result.Games[1].HomeAway)
	assert.Equal(t, domain.ResultLoss, result.Games[1].Result)
}

func TestLoader_LoadCSV_SkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	tests := []struct {
		name string
		row  string
	}{
		{"unparseable points", "9,2025-10-05,Bears,home,abc,17,120,200,1,W"},
		{"missing opponent", "9,2025-10-05,,home,21,17,120,200,1,W"},
		{"bad home_away", "9,2025-10-05,Bears,neutral,21,17,120,200,1,W"},
		{"bad result", "9,2025-10-05,Bears,home,21,17,120,200,1,T"},
		{"bad date", "9,10/05/2025,Bears,home,21,17,120,200,1,W"},
		{"missing game_id", ",2025-10-05,Bears,home,21,17,120,200,1,W"},
		{"negative points", "9,2025-10-05,Bears,home,-3,17,120,200,1,W"},
		{"negative turnovers", "9,2025-10-05,Bears,home,21,17,120,200,-1,W"},
		{"missing numeric field", "9,2025-10-05,Bears,home,21,17,120,200,,W"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := statsHeader +
				"1,2025-09-07,Cowboys,home,24,17,120,200,1,W\n" +
				tt.row + "\n"

			result, err := loader.LoadCSV(ctx, writeCSV(t, csv))
			require.NoError(t, err)
			assert.Len(t, result.Games, 1)
			assert.Equal(t, 1, result.Skipped)
		})
	}
}

func TestLoader_LoadCSV_CaseInsensitiveEnums(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	csv := statsHeader +
		"1,2025-09-07,Cowboys,HOME,24,17,120,200,1,w\n" +
		"2,2025-09-14,Giants,Away,14,27,80,180,3,l\n"

	result, err := loader.LoadCSV(ctx, writeCSV(t, csv))
	require.NoError(t, err)
	require.Len(t, result.Games, 2)

	assert.Equal(t, domain.HomeAwayHome, result.Games[0].HomeAway)
	assert.Equal(t, domain.ResultWin, result.Games[0].Result)
	assert.Equal(t, domain.HomeAwayAway, result.Games[1].HomeAway)
	assert.Equal(t, domain.ResultLoss, result.Games[1].Result)
}

func TestLoader_LoadCSV_HeaderAliasesAndBOM(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	csv := "\xEF\xBB\xBF" +
		"Game ID,Date,Opponent,Venue,Points For,Points Against,Rushing Yards,Passing Yards,Turnovers,Outcome\n" +
		"1,2025-09-07,Cowboys,home,24,17,120,200,1,W\n"

	result, err := loader.LoadCSV(ctx, writeCSV(t, csv))
	require.NoError(t, err)
	require.Len(t, result.Games, 1)
	assert.Equal(t, "1", result.Games[0].GameID)
	assert.Equal(t, 24, result.Games[0].PointsScored)
}

func TestLoader_LoadCSV_SkipsDuplicateGameIDs(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	csv := statsHeader +
		"1,2025-09-07,Cowboys,home,24,17,120,200,1,W\n" +
		"1,2025-09-14,Giants,away,14,27,80,180,3,L\n"

	result, err := loader.LoadCSV(ctx, writeCSV(t, csv))
	require.NoError(t, err)
	assert.Len(t, result.Games, 1)
	assert.Equal(t, 1, result.Skipped)
}

func TestLoader_LoadCSV_SkipsBlankRows(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	csv := statsHeader +
		"1,2025-09-07,Cowboys,home,24,17,120,200,1,W\n" +
		",,,,,,,,,\n" +
		"2,2025-09-14,Giants,away,14,27,80,180,3,L\n"

	result, err := loader.LoadCSV(ctx, writeCSV(t, csv))
	require.NoError(t, err)
	assert.Len(t, result.Games, 2)
	assert.Zero(t, result.Skipped)
}

func TestLoader_LoadCSV_MissingRequiredColumn(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	csv := "game_id,date,opponent,home_away,points_scored,points_allowed,rushing_yards,passing_yards,result\n" +
		"1,2025-09-07,Cowboys,home,24,17,120,200,W\n"

	_, err := loader.LoadCSV(ctx, writeCSV(t, csv))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "turnovers")
}

func TestLoader_LoadCSV_NoHeader(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	csv := "a,b,c\n1,2,3\n"

	_, err := loader.LoadCSV(ctx, writeCSV(t, csv))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestLoader_LoadCSV_FileNotFound(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	_, err := loader.LoadCSV(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestLoader_LoadFile_UnsupportedExtension(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	_, err := loader.LoadFile(ctx, "season.txt")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestLoader_LoadExcel(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	path := filepath.Join(t.TempDir(), "season.xlsx")

	f := excelize.NewFile()
	// Cover sheet without stats, then the real table on a second sheet
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Season Notes"}))
	_, err := f.NewSheet("Games")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Games", "A1", &[]interface{}{
		"game_id", "date", "opponent", "home_away", "points_scored",
		"points_allowed", "rushing_yards", "passing_yards", "turnovers", "result",
	}))
	require.NoError(t, f.SetSheetRow("Games", "A2", &[]interface{}{
		"1", "2025-09-07", "Cowboys", "home", "24", "17", "120", "200", "1", "W",
	}))
	require.NoError(t, f.SetSheetRow("Games", "A3", &[]interface{}{
		"2", "2025-09-14", "Giants", "away", "14", "27", "80", "180", "3", "L",
	}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result, err := loader.LoadFile(ctx, path)
	require.NoError(t, err)
	require.Len(t, result.Games, 2)
	assert.Equal(t, "Cowboys", result.Games[0].Opponent)
	assert.Equal(t, domain.ResultLoss, result.Games[1].Result)
}

func TestLoader_LoadExcel_NoStatsSheet(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(slog.Default(), DefaultLoaderConfig())

	path := filepath.Join(t.TempDir(), "notes.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"nothing", "here"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := loader.LoadExcel(ctx, path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestNewLoader_Defaults(t *testing.T) {
	loader := NewLoader(nil, LoaderConfig{})

	assert.NotNil(t, loader.logger)
	assert.NotNil(t, loader.validate)
	assert.Equal(t, "2006-01-02", loader.dateFormat)
}
