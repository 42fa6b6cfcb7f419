package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gridstats/internal/config"
	"gridstats/internal/dataprocessing"
	"gridstats/internal/exporter"
	"gridstats/internal/files"
	"gridstats/internal/infrastructure"
	"gridstats/pkg/contracts"
	"gridstats/pkg/contracts/domain"
)

func main() {
	input := flag.String("input", "", "season stats file or directory (defaults to configured input dir)")
	out := flag.String("out", "", "report output path (defaults to <reports>/season_report.json)")
	writeCSV := flag.Bool("csv", false, "also write the one-row season summary CSV")
	totals := flag.Bool("totals", false, "include season totals alongside the averages")
	base := flag.String("base", "", "base data directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *base != "" {
		cfg.Paths.BaseDir = *base
	}
	if *totals {
		cfg.Analytics.IncludeTotals = true
	}

	paths := config.NewPaths(cfg.Paths)
	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == config.Default().Logging.FilePath {
		cfg.Logging.FilePath = paths.GetLogPath("season-report.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	// Each run carries a unique id on every log line
	ctx := infrastructure.ContextWithRunID(context.Background())
	logger = infrastructure.LoggerWithContext(ctx)

	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inputPath := *input
	if inputPath == "" {
		inputPath = paths.InputDir
	}
	outPath := *out
	if outPath == "" {
		outPath = paths.ReportJSON
	}

	logger.Info("Starting season report generation",
		slog.String("version", contracts.Version),
		slog.String("input", inputPath),
		slog.String("output", outPath),
		slog.Bool("include_totals", cfg.Analytics.IncludeTotals))

	discovery := files.NewDiscovery("", logger)
	statsFile, err := discovery.ResolveStatsFile(inputPath)
	if err != nil {
		logger.Error("Cannot locate season stats file",
			slog.String("input", inputPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	loader := dataprocessing.NewLoader(logger, dataprocessing.LoaderConfig{
		DateFormat: cfg.Analytics.DateFormat,
	})
	result, err := loader.LoadFile(ctx, statsFile)
	if err != nil {
		logger.Error("Failed to load season stats",
			slog.String("path", statsFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyzer := dataprocessing.NewAnalyzer(logger, dataprocessing.AnalyzerConfig{
		IncludeTotals: cfg.Analytics.IncludeTotals,
	})
	report := analyzer.ComputeReport(ctx, result.Games)

	writer := exporter.NewReportWriter(logger)
	if err := writer.WriteJSON(ctx, outPath, report); err != nil {
		logger.Error("Failed to write season report",
			slog.String("path", outPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *writeCSV {
		csvWriter := exporter.NewCSVWriter(logger)
		if err := csvWriter.WriteSeasonSummary(ctx, paths.SummaryCSV, report); err != nil {
			logger.Error("Failed to write season summary CSV",
				slog.String("path", paths.SummaryCSV),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("Season report generated",
		slog.String("path", outPath),
		slog.Int("games", report.Summary.GamesPlayed),
		slog.Int("skipped_rows", result.Skipped))

	printSeasonSummary(os.Stdout, report)
}

// printSeasonSummary prints the headline numbers to the console.
func printSeasonSummary(w *os.File, report domain.Report) {
	fmt.Fprintln(w, "Season Report")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "Record: %d-%d\n", report.Summary.Wins, report.Summary.Losses)
	fmt.Fprintf(w, "Win Percentage: %.1f%%\n", report.Summary.WinPercentage*100)
	fmt.Fprintln(w, "\nScoring:")
	fmt.Fprintf(w, "  Avg Points Scored: %.1f\n", report.Scoring.AvgPointsScored)
	fmt.Fprintf(w, "  Avg Points Allowed: %.1f\n", report.Scoring.AvgPointsAllowed)
	fmt.Fprintf(w, "  Point Differential: %.1f\n", report.Scoring.PointDifferential)
	fmt.Fprintln(w, "\nOffense:")
	fmt.Fprintf(w, "  Avg Total Yards: %.1f\n", report.Offense.AvgTotalYards)
	fmt.Fprintln(w, "\nHome/Away:")
	fmt.Fprintf(w, "  Home Record: %d-%d\n",
		report.HomeAway.HomeRecord.Wins, report.HomeAway.HomeRecord.Losses)
	fmt.Fprintf(w, "  Away Record: %d-%d\n",
		report.HomeAway.AwayRecord.Wins, report.HomeAway.AwayRecord.Losses)
}
