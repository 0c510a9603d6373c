package gamify

import "time"

// XPPerLog is the flat experience award for any successful activity log.
const XPPerLog = 25

// RequiredXP returns the experience needed to clear the given level.
func RequiredXP(level int) int {
	return level * level * 100
}

// State is the gamification slice of a user profile. LastActivityDate is
// start-of-day; a zero value means the user has never logged anything.
type State struct {
	Level            int       `bson:"level" json:"level"`
	XP               int       `bson:"xp" json:"xp"`
	DailyStreak      int       `bson:"dailyStreak" json:"dailyStreak"`
	LastActivityDate time.Time `bson:"lastActivityDate,omitempty" json:"lastActivityDate,omitempty"`
}

// NewState is the profile zero state assigned at account creation.
func NewState() State {
	return State{Level: 1, XP: 0, DailyStreak: 0}
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// calendarDaysBetween counts whole calendar days from a to b, both already
// normalized to start-of-day.
func calendarDaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// Apply computes the profile state after one activity log on the given day.
// It is pure: the caller reads the current state, applies, and commits the
// result together with the activity insert in one transaction.
func Apply(current State, today time.Time) State {
	today = StartOfDay(today)

	next := current
	if next.Level < 1 {
		next.Level = 1
	}

	switch {
	case current.LastActivityDate.IsZero():
		next.DailyStreak = 1
	default:
		switch gap := calendarDaysBetween(StartOfDay(current.LastActivityDate), today); {
		case gap == 1:
			next.DailyStreak = current.DailyStreak + 1
		case gap == 0:
			// second log the same day, streak unchanged
		default:
			next.DailyStreak = 1
		}
	}

	next.XP += XPPerLog
	if required := RequiredXP(next.Level); next.XP >= required {
		next.Level++
		next.XP -= required
	}

	next.LastActivityDate = today
	return next
}
