package domain

import (
	"fmt"
	"strings"
	"time"
)

// HomeAway indicates where a game was played
type HomeAway string

const (
	HomeAwayHome HomeAway = "home"
	HomeAwayAway HomeAway = "away"
)

// Result represents the outcome of a game
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
)

// Game represents one played game as read from a season stats file.
// A Game is immutable once constructed; the analytics engine never
// modifies the records it is handed.
type Game struct {
	GameID        string    `json:"game_id" csv:"GameID" validate:"required"`
	Date          time.Time `json:"date" csv:"Date" validate:"required"`
	Opponent      string    `json:"opponent" csv:"Opponent" validate:"required"`
	HomeAway      HomeAway  `json:"home_away" csv:"HomeAway" validate:"required,oneof=home away"`
	PointsScored  int       `json:"points_scored" csv:"PointsScored" validate:"min=0"`
	PointsAllowed int       `json:"points_allowed" csv:"PointsAllowed" validate:"min=0"`
	RushingYards  int       `json:"rushing_yards" csv:"RushingYards"`
	PassingYards  int       `json:"passing_yards" csv:"PassingYards"`
	Turnovers     int       `json:"turnovers" csv:"Turnovers" validate:"min=0"`
	Result        Result    `json:"result" csv:"Result" validate:"required,oneof=W L"`
}

// TotalYards returns the combined rushing and passing yards for the game.
func (g Game) TotalYards() int {
	return g.RushingYards + g.PassingYards
}

// IsWin reports whether the game was won.
func (g Game) IsWin() bool {
	return g.Result == ResultWin
}

// ParseHomeAway converts a raw home/away value to its enum form.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseHomeAway(s string) (HomeAway, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return HomeAwayHome, nil
	case "away":
		return HomeAwayAway, nil
	default:
		return "", fmt.Errorf("invalid home_away value: %q", s)
	}
}

// ParseResult converts a raw result value to its enum form.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseResult(s string) (Result, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "W":
		return ResultWin, nil
	case "L":
		return ResultLoss, nil
	default:
		return "", fmt.Errorf("invalid result value: %q", s)
	}
}
