package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecostep/db"
	"ecostep/models"

	"github.com/gin-gonic/gin"
)

// SubmitFeedback stores a feedback entry from the authenticated user.
func SubmitFeedback(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Category string `json:"category" binding:"required,oneof=bug feature general"`
		Message  string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feedback := models.Feedback{
		Email:     email,
		Category:  req.Category,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if _, err := db.GetCollection("feedback").InsertOne(dbCtx, feedback); err != nil {
		log.Printf("Error saving feedback from %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback received. Thank you!"})
}
