package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"ecostep/db"
	"ecostep/models"
	"ecostep/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultLeaderboardSize = 5

// LeaderboardEntry is one row in the community leaderboard.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	DailyStreak int    `json:"dailyStreak"`
	AvatarURL   string `json:"avatarUrl"`
	CurrentUser bool   `json:"currentUser"`
}

// GetLeaderboard returns the most active users, ranked by XP.
func GetLeaderboard(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit := defaultLeaderboardSize
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "xp", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := db.GetCollection("users").Find(dbCtx, bson.M{"xp": bson.M{"$gt": 0}}, findOptions)
	if err != nil {
		log.Printf("Failed to fetch leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return
	}
	defer cursor.Close(dbCtx)

	var users []models.User
	if err := cursor.All(dbCtx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leaderboard data"})
		return
	}

	entries := []LeaderboardEntry{}
	for i, user := range users {
		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(user.Email)
		}
		entries = append(entries, LeaderboardEntry{
			Rank:        i + 1,
			Name:        name,
			Level:       user.Level,
			XP:          user.XP,
			DailyStreak: user.DailyStreak,
			AvatarURL:   utils.AvatarURL(user.AvatarID, name),
			CurrentUser: user.Email == email,
		})
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries, "total": len(entries)})
}
