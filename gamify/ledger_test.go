package gamify

import (
	"testing"
	"time"
)

var today = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestFirstEverLog(t *testing.T) {
	next := Apply(NewState(), today)
	if next.DailyStreak != 1 {
		t.Errorf("streak = %d, want 1", next.DailyStreak)
	}
	if next.XP != XPPerLog {
		t.Errorf("xp = %d, want %d", next.XP, XPPerLog)
	}
	if next.Level != 1 {
		t.Errorf("level = %d, want 1", next.Level)
	}
	if !next.LastActivityDate.Equal(today) {
		t.Errorf("lastActivityDate = %v, want %v", next.LastActivityDate, today)
	}
}

func TestConsecutiveDayExtendsStreak(t *testing.T) {
	current := State{Level: 1, XP: 0, DailyStreak: 5, LastActivityDate: today.AddDate(0, 0, -1)}
	next := Apply(current, today)
	if next.DailyStreak != 6 {
		t.Errorf("streak = %d, want 6", next.DailyStreak)
	}
}

func TestSameDayLogKeepsStreak(t *testing.T) {
	current := State{Level: 1, XP: 25, DailyStreak: 5, LastActivityDate: today}
	next := Apply(current, today)
	if next.DailyStreak != 5 {
		t.Errorf("streak = %d, want 5", next.DailyStreak)
	}
	if next.XP != 50 {
		t.Errorf("xp = %d, want 50 (same-day logs still earn XP)", next.XP)
	}
}

func TestMissedDaysResetStreak(t *testing.T) {
	current := State{Level: 1, XP: 0, DailyStreak: 5, LastActivityDate: today.AddDate(0, 0, -3)}
	next := Apply(current, today)
	if next.DailyStreak != 1 {
		t.Errorf("streak = %d, want 1", next.DailyStreak)
	}
}

func TestLevelUpCarriesRemainder(t *testing.T) {
	current := State{Level: 1, XP: 80, DailyStreak: 1, LastActivityDate: today.AddDate(0, 0, -1)}
	next := Apply(current, today)
	// 80 + 25 = 105 >= 100, so level 2 with 5 XP carried over.
	if next.Level != 2 {
		t.Errorf("level = %d, want 2", next.Level)
	}
	if next.XP != 5 {
		t.Errorf("xp = %d, want 5", next.XP)
	}
}

func TestNoLevelUpBelowThreshold(t *testing.T) {
	current := State{Level: 2, XP: 370, DailyStreak: 1, LastActivityDate: today.AddDate(0, 0, -1)}
	next := Apply(current, today)
	// 370 + 25 = 395 < 400
	if next.Level != 2 || next.XP != 395 {
		t.Errorf("got level %d xp %d, want level 2 xp 395", next.Level, next.XP)
	}
}

func TestRequiredXPCurve(t *testing.T) {
	cases := map[int]int{1: 100, 2: 400, 3: 900, 10: 10000}
	for level, want := range cases {
		if got := RequiredXP(level); got != want {
			t.Errorf("RequiredXP(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestXPStaysBelowRequirement(t *testing.T) {
	// Walk a year of daily logs and check the level invariant holds after
	// every single one.
	state := NewState()
	day := today
	for i := 0; i < 365; i++ {
		state = Apply(state, day)
		if state.XP >= RequiredXP(state.Level) {
			t.Fatalf("day %d: xp %d >= required %d at level %d", i, state.XP, RequiredXP(state.Level), state.Level)
		}
		day = day.AddDate(0, 0, 1)
	}
	if state.DailyStreak != 365 {
		t.Errorf("streak after a year = %d, want 365", state.DailyStreak)
	}
}

func TestApplyNormalizesToStartOfDay(t *testing.T) {
	lateEvening := time.Date(2025, time.March, 10, 23, 45, 0, 0, time.UTC)
	next := Apply(NewState(), lateEvening)
	if !next.LastActivityDate.Equal(today) {
		t.Errorf("lastActivityDate = %v, want start of day %v", next.LastActivityDate, today)
	}

	// A log the next morning still counts as a consecutive calendar day.
	nextMorning := time.Date(2025, time.March, 11, 0, 5, 0, 0, time.UTC)
	after := Apply(next, nextMorning)
	if after.DailyStreak != 2 {
		t.Errorf("streak = %d, want 2", after.DailyStreak)
	}
}
