package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"ecostep/impact"
	"ecostep/models"
	"ecostep/services"
	"ecostep/websocket"

	"github.com/gin-gonic/gin"
)

// LogActivity handles one activity submission. The service commits the
// activity document and the profile update atomically.
func LogActivity(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var activity impact.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	outcome, err := services.LogActivity(dbCtx, email, activity, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownTransportMode),
			errors.Is(err, services.ErrFuelEfficiencyRequired),
			errors.Is(err, services.ErrNegativeValue):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity", "message": err.Error()})
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Printf("Error logging activity for %s: %v", email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log activity"})
		}
		return
	}

	broadcastLogEvents(email, outcome)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Activity logged",
		"activity":    outcome.Entry,
		"xp":          outcome.Updated.XP,
		"level":       outcome.Updated.Level,
		"dailyStreak": outcome.Updated.DailyStreak,
		"leveledUp":   outcome.LeveledUp(),
	})
}

func broadcastLogEvents(email string, outcome *services.LogOutcome) {
	now := time.Now()
	websocket.BroadcastGamificationEvent(models.GamificationEvent{
		Type:      "xp_awarded",
		Email:     email,
		XP:        outcome.Updated.XP,
		Level:     outcome.Updated.Level,
		Timestamp: now,
	})
	if outcome.LeveledUp() {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "level_up",
			Email:     email,
			Level:     outcome.Updated.Level,
			Timestamp: now,
		})
	}
	if outcome.StreakExtended() {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:        "streak_extended",
			Email:       email,
			DailyStreak: outcome.Updated.DailyStreak,
			Timestamp:   now,
		})
	}
}

// ListActivities returns the caller's full history, oldest first.
func ListActivities(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := services.GetProfileByEmail(dbCtx, email)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	activities, err := services.ListActivities(dbCtx, user.ID)
	if err != nil {
		log.Printf("Error listing activities for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities, "total": len(activities)})
}
