package routes

import (
	"ecostep/controllers"

	"github.com/gin-gonic/gin"
)

func GetDashboardRouteHandler(c *gin.Context) {
	controllers.GetDashboard(c)
}

func SubmitFeedbackRouteHandler(c *gin.Context) {
	controllers.SubmitFeedback(c)
}
