// Package momentum derives the momentum score and habit streaks from raw
// rows. It is pure computation: no I/O, no hidden state, recomputed from
// scratch on every read.
package momentum

import "math"

// Score weights. The baseline anchors the scale so a fresh account does
// not start at zero.
const (
	Baseline        = 250
	StreakWeight    = 10
	CompletionBonus = 15
	BudgetWeight    = 300
	BudgetPenalty   = -50
)

// HabitStanding is one habit's contribution inputs: its current streak
// length and whether it was completed today.
type HabitStanding struct {
	HabitID        string
	Streak         int
	CompletedToday bool
}

// Score blends habit consistency and budget discipline into one scalar.
//
// Each habit contributes streak*StreakWeight plus CompletionBonus when
// completed today. Staying under budget adds floor((1-spent/budget)*BudgetWeight);
// at or over budget adds BudgetPenalty. No floor or ceiling is applied to
// the result. A non-positive budget disables the budget term entirely, so
// empty inputs yield exactly the baseline.
func Score(habits []HabitStanding, monthSpend, monthlyBudget float64) int {
	score := Baseline
	for _, h := range habits {
		score += h.Streak * StreakWeight
		if h.CompletedToday {
			score += CompletionBonus
		}
	}
	if monthlyBudget > 0 {
		ratio := monthSpend / monthlyBudget
		if ratio < 1 {
			score += int(math.Floor((1 - ratio) * BudgetWeight))
		} else {
			score += BudgetPenalty
		}
	}
	return score
}

// Level is a coarse band of the score used for status display.
type Level string

const (
	LevelLow      Level = "low"
	LevelBuilding Level = "building"
	LevelSolid    Level = "solid"
	LevelUltra    Level = "ultra"
)

// LevelFor maps a score to its band.
func LevelFor(score int) Level {
	switch {
	case score < 300:
		return LevelLow
	case score < 500:
		return LevelBuilding
	case score < 800:
		return LevelSolid
	default:
		return LevelUltra
	}
}
