package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecostep/services"

	"github.com/gin-gonic/gin"
)

const contentTimeout = 30 * time.Second

// GetEcoTips generates personalized tips from the user's habit descriptions.
func GetEcoTips(c *gin.Context) {
	var input services.EcoTipsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), contentTimeout)
	defer cancel()

	tips, err := services.GenerateEcoTips(ctx, input)
	if err != nil {
		log.Printf("Failed to generate eco tips: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate tips. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// GenerateRecipe generates a sustainable recipe.
func GenerateRecipe(c *gin.Context) {
	var req struct {
		Request string `json:"request" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), contentTimeout)
	defer cancel()

	recipe, err := services.GenerateRecipe(ctx, req.Request)
	if err != nil {
		log.Printf("Failed to generate recipe: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recipe. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// GetDailyQuote returns a short environmental quote.
func GetDailyQuote(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), contentTimeout)
	defer cancel()

	quote, err := services.DailyQuote(ctx)
	if err != nil {
		log.Printf("Failed to generate quote: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate a quote. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// GenerateArticle generates an educational article on a topic.
func GenerateArticle(c *gin.Context) {
	var req struct {
		Topic string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), contentTimeout)
	defer cancel()

	article, err := services.GenerateArticle(ctx, req.Topic)
	if err != nil {
		log.Printf("Failed to generate article: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate article. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// AnalyzeProduct returns a sustainability assessment for a product.
func AnalyzeProduct(c *gin.Context) {
	var req struct {
		Product string `json:"product" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), contentTimeout)
	defer cancel()

	analysis, err := services.AnalyzeProduct(ctx, req.Product)
	if err != nil {
		log.Printf("Failed to analyze product: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to analyze product. The AI model may be unavailable. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// GetLocalRecommendations suggests region-specific sustainability actions.
func GetLocalRecommendations(c *gin.Context) {
	var req struct {
		Location string `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), contentTimeout)
	defer cancel()

	recommendations, err := services.LocalRecommendations(ctx, req.Location)
	if err != nil {
		log.Printf("Failed to generate recommendations: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recommendations. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// GetEcoActions suggests one-off sustainable actions.
func GetEcoActions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), contentTimeout)
	defer cancel()

	actions, err := services.GenerateEcoActions(ctx)
	if err != nil {
		log.Printf("Failed to generate actions: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate actions. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"actions": actions})
}
