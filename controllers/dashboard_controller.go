package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"ecostep/gamify"
	"ecostep/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the impact summary derived from the caller's history:
// the latest daily/weekly/monthly estimates, savings, chart series and
// milestones. An empty history yields hasData=false rather than an error.
func GetDashboard(c *gin.Context) {
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
		log.Printf("Error fetching activities for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}

	summary := services.BuildSummary(activities)

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"gamification": gin.H{
			"level":            user.Level,
			"xp":               user.XP,
			"requiredXp":       gamify.RequiredXP(user.Level),
			"dailyStreak":      user.DailyStreak,
			"lastActivityDate": user.LastActivityDate,
		},
	})
}
