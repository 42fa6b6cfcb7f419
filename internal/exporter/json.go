package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"gridstats/internal/errors"
	"gridstats/pkg/contracts/domain"
)

// ReportWriter serializes the season report to an indented JSON file.
type ReportWriter struct {
	logger *slog.Logger
}

// NewReportWriter creates a new JSON report writer.
func NewReportWriter(logger *slog.Logger) *ReportWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWriter{logger: logger}
}

// WriteJSON writes the report to the given path, creating parent
// directories as needed. The output object carries exactly the five
// report sections; all numeric fields are emitted as JSON numbers.
func (w *ReportWriter) WriteJSON(ctx context.Context, path string, report domain.Report) error {
	w.logger.InfoContext(ctx, "writing season report",
		slog.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for report output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create report file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return errors.NewStorageError("failed to encode season report", err)
	}

	w.logger.InfoContext(ctx, "successfully wrote season report",
		slog.String("path", path))

	return nil
}
