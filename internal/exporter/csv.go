package exporter

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gridstats/internal/errors"
	"gridstats/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Append    bool
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("writing CSV file",
		slog.String("path", filePath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for CSV output", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if options.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(filePath, flags, 0644)
	if err != nil {
		return errors.NewStorageError("failed to open CSV file", err)
	}
	defer file.Close()

	// Write BOM if requested (helps Excel recognize UTF-8)
	if options.BOMPrefix && !options.Append {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return errors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if !options.Append && len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return errors.NewStorageError("failed to write CSV header row", err)
		}
	}

	for _, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSeasonSummary writes the report's headline numbers as a one-row
// CSV for spreadsheet consumers.
func (w *CSVWriter) WriteSeasonSummary(ctx context.Context, path string, report domain.Report) error {
	w.logger.InfoContext(ctx, "writing season summary CSV",
		slog.String("path", path))

	headers := []string{
		"GamesPlayed", "Wins", "Losses", "WinPercentage",
		"AvgPointsScored", "AvgPointsAllowed", "PointDifferential",
		"AvgRushingYards", "AvgPassingYards", "AvgTotalYards",
		"TotalTurnovers", "AvgTurnovers",
		"HomeWins", "HomeLosses", "AwayWins", "AwayLosses",
	}

	row := []string{
		strconv.Itoa(report.Summary.GamesPlayed),
		strconv.Itoa(report.Summary.Wins),
		strconv.Itoa(report.Summary.Losses),
		formatFloat(report.Summary.WinPercentage),
		formatFloat(report.Scoring.AvgPointsScored),
		formatFloat(report.Scoring.AvgPointsAllowed),
		formatFloat(report.Scoring.PointDifferential),
		formatFloat(report.Offense.AvgRushingYards),
		formatFloat(report.Offense.AvgPassingYards),
		formatFloat(report.Offense.AvgTotalYards),
		strconv.Itoa(report.Turnovers.TotalTurnovers),
		formatFloat(report.Turnovers.AvgTurnovers),
		strconv.Itoa(report.HomeAway.HomeRecord.Wins),
		strconv.Itoa(report.HomeAway.HomeRecord.Losses),
		strconv.Itoa(report.HomeAway.AwayRecord.Wins),
		strconv.Itoa(report.HomeAway.AwayRecord.Losses),
	}

	return w.WriteCSV(path, WriteOptions{
		Headers:   headers,
		Records:   [][]string{row},
		BOMPrefix: true,
	})
}

// formatFloat renders a float without trailing zeros
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
