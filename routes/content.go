package routes

import (
	"ecostep/controllers"

	"github.com/gin-gonic/gin"
)

// SetupContentRoutes registers the AI content endpoints on an authenticated group.
func SetupContentRoutes(group *gin.RouterGroup) {
	group.POST("/content/tips", controllers.GetEcoTips)
	group.POST("/content/recipe", controllers.GenerateRecipe)
	group.GET("/content/quote", controllers.GetDailyQuote)
	group.POST("/content/article", controllers.GenerateArticle)
	group.POST("/content/analyze-product", controllers.AnalyzeProduct)
	group.POST("/content/recommendations", controllers.GetLocalRecommendations)
	group.GET("/content/actions", controllers.GetEcoActions)
}
