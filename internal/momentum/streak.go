package momentum

import (
	"time"

	"github.com/momentumos/momentum/internal/models"
)

// LookbackDays bounds the backward walk of Streak. Days older than the
// window never extend a streak.
const LookbackDays = 30

// Streak counts consecutive satisfied on-schedule days walking backward
// from today.
//
// completed maps calendar dates (models.DateLayout) to the completion
// flag for this habit. Off-schedule days are neutral and skipped. An
// on-schedule completed day counts and the walk continues. An on-schedule
// missed day consumes one freeze token and still counts; once the tokens
// run out the walk halts. Today is lenient: if not
// yet completed it is skipped without breaking the streak, since the day
// is still in progress.
//
// Freezes are consumed for this computation pass only; the available
// balance is not decremented anywhere. A habit with zero scheduled days
// in the window yields 0.
func Streak(completed map[string]bool, schedule models.Schedule, freezes int, today time.Time) int {
	streak := 0
	remaining := freezes
	for i := 0; i < LookbackDays; i++ {
		day := today.AddDate(0, 0, -i)
		if !schedule.On(day.Weekday()) {
			continue
		}
		if completed[day.Format(models.DateLayout)] {
			streak++
			continue
		}
		if i == 0 {
			// Today is not over yet.
			continue
		}
		if remaining > 0 {
			remaining--
			streak++
			continue
		}
		break
	}
	return streak
}

// CompletedToday reports whether the habit has a completed log for today.
func CompletedToday(completed map[string]bool, today time.Time) bool {
	return completed[today.Format(models.DateLayout)]
}
