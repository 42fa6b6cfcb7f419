package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"gridstats/internal/errors"
)

// LoadExcel reads game records from an Excel workbook. The sheet holding
// the stats table is located by scanning every sheet for a recognizable
// header row, so exports with cover or notes sheets still load.
func (l *Loader) LoadExcel(ctx context.Context, path string) (*LoadResult, error) {
	l.logger.InfoContext(ctx, "loading game stats from Excel",
		slog.String("path", path))

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open Excel file", err)
	}
	defer f.Close()

	var rows [][]string
	var sheetName string

	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if headerRow, _ := findHeader(sheetRows); headerRow >= 0 {
			rows = sheetRows
			sheetName = name
			break
		}
	}

	if sheetName == "" {
		return nil, errors.NewParsingError("could not find stats sheet in workbook", nil).
			WithContext("path", path)
	}

	l.logger.DebugContext(ctx, "found stats sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	return l.loadRows(ctx, rows, path)
}
