package dataprocessing

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"gridstats/internal/errors"
	"gridstats/pkg/contracts/domain"
)

// Loader reads season stats files and extracts validated game records.
// It is the only component that observes malformed input: rows that fail
// parsing or validation are skipped with a warning, never passed on.
type Loader struct {
	logger     *slog.Logger
	validate   *validator.Validate
	dateFormat string
}

// LoaderConfig holds configuration options for the Loader.
type LoaderConfig struct {
	DateFormat string // Format for date values in the input, defaults to ISO 8601
}

// DefaultLoaderConfig returns a default configuration for typical use cases.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		DateFormat: "2006-01-02",
	}
}

// LoadResult carries the validated games plus bookkeeping about the rows
// that were rejected along the way.
type LoadResult struct {
	Games   []domain.Game
	Skipped int
	Source  string
}

// NewLoader creates a new stats file loader with the given configuration.
func NewLoader(logger *slog.Logger, config LoaderConfig) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	if config.DateFormat == "" {
		config.DateFormat = "2006-01-02"
	}

	return &Loader{
		logger:     logger,
		validate:   validator.New(),
		dateFormat: config.DateFormat,
	}
}

// LoadFile reads one season stats file, dispatching on the file extension.
// CSV and Excel (.xlsx) inputs are supported.
func (l *Loader) LoadFile(ctx context.Context, path string) (*LoadResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return l.LoadCSV(ctx, path)
	case ".xlsx":
		return l.LoadExcel(ctx, path)
	default:
		return nil, errors.NewParsingError(
			fmt.Sprintf("unsupported stats file format: %s", filepath.Ext(path)), nil)
	}
}

// LoadCSV reads game records from a CSV file.
func (l *Loader) LoadCSV(ctx context.Context, path string) (*LoadResult, error) {
	l.logger.InfoContext(ctx, "loading game stats from CSV",
		slog.String("path", path))

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("stats file %s", path))
		}
		return nil, errors.NewStorageError("failed to read stats file", err)
	}

	// Remove UTF-8 BOM if present (Excel-exported CSVs carry one)
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV rows", err)
	}

	return l.loadRows(ctx, rows, path)
}

// loadRows locates the header row, maps column positions by name, and
// parses every data row into a validated Game.
func (l *Loader) loadRows(ctx context.Context, rows [][]string, source string) (*LoadResult, error) {
	headerRow, columnMap := findHeader(rows)
	if headerRow == -1 {
		return nil, errors.NewParsingError("could not find header row in stats file", nil).
			WithContext("source", source)
	}

	// Verify we found all required columns
	for _, col := range requiredColumns {
		if _, exists := columnMap[col]; !exists {
			return nil, errors.NewParsingError(
				fmt.Sprintf("could not find required column: %s", col), nil).
				WithContext("source", source)
		}
	}

	result := &LoadResult{
		Games:  make([]domain.Game, 0, len(rows)-headerRow-1),
		Source: source,
	}
	seen := make(map[string]bool)

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		if isEmptyRow(row) {
			continue
		}

		game, err := l.parseRow(row, columnMap)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping malformed row",
				slog.String("source", source),
				slog.Int("row", i+1),
				slog.String("error", err.Error()))
			result.Skipped++
			continue
		}

		if seen[game.GameID] {
			l.logger.WarnContext(ctx, "skipping duplicate game_id",
				slog.String("source", source),
				slog.Int("row", i+1),
				slog.String("game_id", game.GameID))
			result.Skipped++
			continue
		}
		seen[game.GameID] = true

		result.Games = append(result.Games, game)
	}

	l.logger.InfoContext(ctx, "finished loading game stats",
		slog.String("source", source),
		slog.Int("game_count", len(result.Games)),
		slog.Int("skipped_rows", result.Skipped))

	return result, nil
}

// requiredColumns lists the logical columns every stats file must carry.
var requiredColumns = []string{
	"game_id", "date", "opponent", "home_away",
	"points_scored", "points_allowed",
	"rushing_yards", "passing_yards",
	"turnovers", "result",
}

// findHeader scans for the header row and maps column positions by name.
// Header matching is tolerant of spacing, case, and common aliases.
func findHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		columnMap := make(map[string]int)

		for j, header := range row {
			if name := normalizeColumn(header); name != "" {
				if _, exists := columnMap[name]; !exists {
					columnMap[name] = j
				}
			}
		}

		// A header row must at least identify the game and its outcome
		if _, ok := columnMap["game_id"]; !ok {
			continue
		}
		if _, ok := columnMap["result"]; !ok {
			continue
		}
		return i, columnMap
	}

	return -1, nil
}

// normalizeColumn maps a raw header cell to its logical column name,
// or "" if it is not a recognized column.
func normalizeColumn(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")

	switch h {
	case "game_id", "gameid", "id":
		return "game_id"
	case "date", "game_date":
		return "date"
	case "opponent":
		return "opponent"
	case "home_away", "homeaway", "venue", "site":
		return "home_away"
	case "points_scored", "points_for":
		return "points_scored"
	case "points_allowed", "points_against":
		return "points_allowed"
	case "rushing_yards":
		return "rushing_yards"
	case "passing_yards":
		return "passing_yards"
	case "turnovers":
		return "turnovers"
	case "result", "outcome":
		return "result"
	default:
		return ""
	}
}

// parseRow converts one data row into a validated Game.
func (l *Loader) parseRow(row []string, columnMap map[string]int) (domain.Game, error) {
	getString := func(colName string) string {
		if idx, exists := columnMap[colName]; exists && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	parseInt := func(colName string) (int, error) {
		raw := getString(colName)
		if raw == "" {
			return 0, fmt.Errorf("missing %s", colName)
		}
		val, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %q", colName, raw)
		}
		return val, nil
	}

	var game domain.Game

	game.GameID = getString("game_id")
	game.Opponent = getString("opponent")

	date, err := time.Parse(l.dateFormat, getString("date"))
	if err != nil {
		return domain.Game{}, fmt.Errorf("invalid date: %q", getString("date"))
	}
	game.Date = date

	homeAway, err := domain.ParseHomeAway(getString("home_away"))
	if err != nil {
		return domain.Game{}, err
	}
	game.HomeAway = homeAway

	result, err := domain.ParseResult(getString("result"))
	if err != nil {
		return domain.Game{}, err
	}
	game.Result = result

	if game.PointsScored, err = parseInt("points_scored"); err != nil {
		return domain.Game{}, err
	}
	if game.PointsAllowed, err = parseInt("points_allowed"); err != nil {
		return domain.Game{}, err
	}
	if game.RushingYards, err = parseInt("rushing_yards"); err != nil {
		return domain.Game{}, err
	}
	if game.PassingYards, err = parseInt("passing_yards"); err != nil {
		return domain.Game{}, err
	}
	if game.Turnovers, err = parseInt("turnovers"); err != nil {
		return domain.Game{}, err
	}

	if err := l.validate.Struct(game); err != nil {
		return domain.Game{}, fmt.Errorf("validation failed: %w", err)
	}

	return game, nil
}

// isEmptyRow reports whether every cell in the row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
