package registration

import (
	"fmt"
	"math"
	"regexp"
	"unicode/utf8"
)

// MaxStrength is the highest strength level.
const MaxStrength = 4

// Pre-compiled regexes for password strength scoring
var (
	reLower   = regexp.MustCompile(`[a-z]`)
	reUpper   = regexp.MustCompile(`[A-Z]`)
	reDigit   = regexp.MustCompile(`[0-9]`)
	reSpecial = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// Level describes how the strength meter renders one score.
type Level struct {
	Level int     `json:"level" example:"2"`
	Label string  `json:"label" example:"Fair"`
	Color string  `json:"color" example:"#f1c40f"`
	Fill  float64 `json:"fill" example:"0.6"`
}

// Width renders Fill as a CSS percentage.
func (l Level) Width() string {
	return fmt.Sprintf("%d%%", int(math.Round(l.Fill*100)))
}

var levels = [MaxStrength + 1]Level{
	{Level: 0, Label: "Very Weak", Color: "#e74c3c", Fill: 0.2},
	{Level: 1, Label: "Weak", Color: "#f39c12", Fill: 0.4},
	{Level: 2, Label: "Fair", Color: "#f1c40f", Fill: 0.6},
	{Level: 3, Label: "Good", Color: "#2ecc71", Fill: 0.8},
	{Level: 4, Label: "Strong", Color: "#27ae60", Fill: 1.0},
}

// Levels returns a copy of the strength table, indexed by score.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// LevelFor returns the meter level for score, clamping out-of-range scores.
func LevelFor(score int) Level {
	return levels[clampScore(score)]
}

// Score rates password from 0 to MaxStrength. One point each for length,
// lowercase, uppercase, digit and any other character; five points clamp to
// MaxStrength. It is an additive heuristic, not an entropy estimate.
func Score(password string) int {
	score := 0
	if utf8.RuneCountInString(password) >= MinPasswordLength {
		score++
	}
	if reLower.MatchString(password) {
		score++
	}
	if reUpper.MatchString(password) {
		score++
	}
	if reDigit.MatchString(password) {
		score++
	}
	if reSpecial.MatchString(password) {
		score++
	}
	return clampScore(score)
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > MaxStrength:
		return MaxStrength
	}
	return score
}
