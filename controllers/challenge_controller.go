package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ecostep/db"
	"ecostep/models"
	"ecostep/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ListChallenges returns the community challenge catalogue.
func ListChallenges(c *gin.Context) {
	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.GetCollection("challenges").Find(dbCtx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenges"})
		return
	}
	defer cursor.Close(dbCtx)

	challenges := []models.Challenge{}
	if err := cursor.All(dbCtx, &challenges); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode challenges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

// JoinChallenge adds a challenge to the caller's joined set.
func JoinChallenge(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	challengeID := c.Param("id")
	if challengeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing challenge id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := services.JoinChallenge(dbCtx, email, challengeID); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to join challenge", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Challenge joined", "challengeId": challengeID})
}
