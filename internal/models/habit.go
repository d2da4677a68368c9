package models

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for habit logs and expenses.
// Matches the date column format of the remote store.
const DateLayout = "2006-01-02"

// Schedule describes on which days a habit is expected to be performed.
// Either Daily is true, or Days holds an explicit set of weekday names
// (lowercase, e.g. "monday"). A day outside the schedule is neutral for
// streak purposes.
type Schedule struct {
	Days  []string `json:"days,omitempty"`
	Daily bool     `json:"daily"`
}

// EveryDay returns a schedule covering all seven weekdays.
func EveryDay() Schedule {
	return Schedule{Daily: true}
}

// OnWeekdays returns a schedule covering only the given weekdays.
func OnWeekdays(days ...time.Weekday) Schedule {
	s := Schedule{Days: make([]string, 0, len(days))}
	for _, d := range days {
		s.Days = append(s.Days, strings.ToLower(d.String()))
	}
	return s
}

// On reports whether the given weekday is part of the schedule.
func (s Schedule) On(day time.Weekday) bool {
	if s.Daily {
		return true
	}
	name := strings.ToLower(day.String())
	for _, d := range s.Days {
		if d == name {
			return true
		}
	}
	return false
}

// ParseWeekdays parses a comma-separated list of weekday names
// ("mon,wed,fri" or full names) into a schedule.
func ParseWeekdays(list string) (Schedule, bool) {
	var s Schedule
	for _, part := range strings.Split(list, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		matched := false
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			full := strings.ToLower(wd.String())
			if part == full || part == full[:3] {
				s.Days = append(s.Days, full)
				matched = true
				break
			}
		}
		if !matched {
			return Schedule{}, false
		}
	}
	if len(s.Days) == 0 {
		return Schedule{}, false
	}
	return s, true
}

// Habit represents a recurring practice owned by a user.
type Habit struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Schedule  Schedule  `json:"schedule"`
}

// HabitLog is a single day's completion record for a habit.
// The remote store keys it by (habit_id, date); writes go through upsert
// on that composite key.
type HabitLog struct {
	HabitID   string `json:"habit_id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}
