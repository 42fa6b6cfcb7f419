package domain

// Report is the complete season analytics output produced by one run of
// the aggregation engine. It serializes with exactly five top-level
// sections, each computed independently from the full game collection.
// A Report is never mutated after construction.
type Report struct {
	Summary   SummarySection  `json:"summary"`
	Scoring   ScoringSection  `json:"scoring"`
	Offense   OffenseSection  `json:"offense"`
	Turnovers TurnoverSection `json:"turnovers"`
	HomeAway  HomeAwaySection `json:"home_away"`
}

// SummarySection holds the season record. WinPercentage is a fraction
// in [0,1] rounded to 3 decimal places, 0 for an empty season.
type SummarySection struct {
	GamesPlayed   int     `json:"games_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
}

// ScoringSection holds per-game scoring averages rounded to 1 decimal
// place. PointDifferential is computed from the unrounded means.
// The season totals are optional extras emitted only when enabled.
type ScoringSection struct {
	AvgPointsScored   float64 `json:"avg_points_scored"`
	AvgPointsAllowed  float64 `json:"avg_points_allowed"`
	PointDifferential float64 `json:"point_differential"`

	TotalPointsScored  int `json:"total_points_scored,omitempty"`
	TotalPointsAllowed int `json:"total_points_allowed,omitempty"`
}

// OffenseSection holds per-game yardage averages rounded to 1 decimal
// place. AvgTotalYards is the mean of per-game combined yardage,
// computed at full precision before rounding.
type OffenseSection struct {
	AvgRushingYards float64 `json:"avg_rushing_yards"`
	AvgPassingYards float64 `json:"avg_passing_yards"`
	AvgTotalYards   float64 `json:"avg_total_yards"`

	TotalRushingYards int `json:"total_rushing_yards,omitempty"`
	TotalPassingYards int `json:"total_passing_yards,omitempty"`
	TotalYards        int `json:"total_yards,omitempty"`
}

// TurnoverSection holds the season turnover totals and the per-game
// average rounded to 2 decimal places.
type TurnoverSection struct {
	TotalTurnovers int     `json:"total_turnovers"`
	AvgTurnovers   float64 `json:"avg_turnovers"`
}

// WinLossRecord is a win/loss tally within one venue partition.
type WinLossRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// HomeAwaySection splits the season record by venue. A partition with
// no games reports a zero record.
type HomeAwaySection struct {
	HomeRecord WinLossRecord `json:"home_record"`
	AwayRecord WinLossRecord `json:"away_record"`
}
