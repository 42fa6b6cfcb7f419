package dataprocessing

import (
	"context"
	"log/slog"
	"math"

	"gridstats/pkg/contracts/domain"
)

// Analyzer reduces a game collection into the season analytics report.
// It is a pure aggregator: it performs no I/O, never mutates its input,
// and always succeeds, including on the empty collection. The same game
// sequence in any order yields the identical report.
type Analyzer struct {
	logger        *slog.Logger
	includeTotals bool
}

// AnalyzerConfig holds configuration options for the Analyzer.
type AnalyzerConfig struct {
	IncludeTotals bool // Include season totals alongside the per-game averages
}

// DefaultAnalyzerConfig returns a default configuration for typical use cases.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		IncludeTotals: false,
	}
}

// NewAnalyzer creates a new season analyzer with the given configuration.
func NewAnalyzer(logger *slog.Logger, config AnalyzerConfig) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		logger:        logger,
		includeTotals: config.IncludeTotals,
	}
}

// ComputeReport aggregates the game collection into a Report.
//
// Averages are computed at full precision and rounded only as they enter
// the report: win percentage to 3 decimal places, scoring and yardage
// averages to 1, turnover average to 2. Derived values (point
// differential, average total yards) come from the unrounded means so
// rounding error never compounds. Rounding is half away from zero.
func (a *Analyzer) ComputeReport(ctx context.Context, games []domain.Game) domain.Report {
	a.logger.InfoContext(ctx, "computing season report",
		slog.Int("game_count", len(games)))

	n := len(games)
	if n == 0 {
		return domain.Report{}
	}

	var (
		wins               int
		totalPointsScored  int
		totalPointsAllowed int
		totalRushingYards  int
		totalPassingYards  int
		totalTurnovers     int
		homeRecord         domain.WinLossRecord
		awayRecord         domain.WinLossRecord
	)

	for _, g := range games {
		if g.IsWin() {
			wins++
		}
		totalPointsScored += g.PointsScored
		totalPointsAllowed += g.PointsAllowed
		totalRushingYards += g.RushingYards
		totalPassingYards += g.PassingYards
		totalTurnovers += g.Turnovers

		record := &homeRecord
		if g.HomeAway == domain.HomeAwayAway {
			record = &awayRecord
		}
		if g.IsWin() {
			record.Wins++
		} else {
			record.Losses++
		}
	}

	count := float64(n)
	avgPointsScored := float64(totalPointsScored) / count
	avgPointsAllowed := float64(totalPointsAllowed) / count
	avgRushingYards := float64(totalRushingYards) / count
	avgPassingYards := float64(totalPassingYards) / count

	report := domain.Report{
		Summary: domain.SummarySection{
			GamesPlayed:   n,
			Wins:          wins,
			Losses:        n - wins,
			WinPercentage: roundTo(float64(wins)/count, 3),
		},
		Scoring: domain.ScoringSection{
			AvgPointsScored:   roundTo(avgPointsScored, 1),
			AvgPointsAllowed:  roundTo(avgPointsAllowed, 1),
			PointDifferential: roundTo(avgPointsScored-avgPointsAllowed, 1),
		},
		Offense: domain.OffenseSection{
			AvgRushingYards: roundTo(avgRushingYards, 1),
			AvgPassingYards: roundTo(avgPassingYards, 1),
			AvgTotalYards:   roundTo(avgRushingYards+avgPassingYards, 1),
		},
		Turnovers: domain.TurnoverSection{
			TotalTurnovers: totalTurnovers,
			AvgTurnovers:   roundTo(float64(totalTurnovers)/count, 2),
		},
		HomeAway: domain.HomeAwaySection{
			HomeRecord: homeRecord,
			AwayRecord: awayRecord,
		},
	}

	if a.includeTotals {
		report.Scoring.TotalPointsScored = totalPointsScored
		report.Scoring.TotalPointsAllowed = totalPointsAllowed
		report.Offense.TotalRushingYards = totalRushingYards
		report.Offense.TotalPassingYards = totalPassingYards
		report.Offense.TotalYards = totalRushingYards + totalPassingYards
	}

	a.logger.InfoContext(ctx, "season report computed",
		slog.Int("wins", report.Summary.Wins),
		slog.Int("losses", report.Summary.Losses),
		slog.Float64("win_percentage", report.Summary.WinPercentage))

	return report
}

// roundTo rounds v to the given number of decimal places,
// half away from zero.
func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
