package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"ecostep/services"
	"ecostep/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile retrieves and returns user profile data
func GetProfile(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
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

	name := user.DisplayName
	if name == "" {
		name = utils.ExtractNameFromEmail(email)
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"email":               user.Email,
			"displayName":         name,
			"country":             user.Country,
			"currency":            user.Currency,
			"gender":              user.Gender,
			"birthYear":           user.BirthYear,
			"avatarUrl":           utils.AvatarURL(user.AvatarID, name),
			"onboardingCompleted": user.OnboardingCompleted,
			"baselineCo2":         user.BaselineCO2,
			"level":               user.Level,
			"xp":                  user.XP,
			"dailyStreak":         user.DailyStreak,
			"lastActivityDate":    user.LastActivityDate,
			"joinedChallenges":    user.JoinedChallenges,
		},
	})
}

// UpdateProfile modifies the descriptive profile fields
func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var upd services.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := services.UpdateProfile(dbCtx, email, upd); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// CompleteOnboarding stores the questionnaire outcome on the profile
func CompleteOnboarding(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		BaselineCO2 float64 `json:"baselineCo2" binding:"required"`
		Country     string  `json:"country"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := services.CompleteOnboarding(dbCtx, email, req.BaselineCO2, req.Country); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Onboarding completed"})
}

// DeleteAccount removes the profile and all activity history
func DeleteAccount(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := services.DeleteAccount(dbCtx, email); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Error deleting account %s: %v", email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
