package models

import "time"

// GamificationEvent is pushed over WebSocket after a successful activity log.
type GamificationEvent struct {
	Type        string    `json:"type"` // "xp_awarded", "level_up", "streak_extended"
	Email       string    `json:"email"`
	XP          int       `json:"xp,omitempty"`
	Level       int       `json:"level,omitempty"`
	DailyStreak int       `json:"dailyStreak,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
