package routes

import (
	"ecostep/controllers"

	"github.com/gin-gonic/gin"
)

func LogActivityRouteHandler(c *gin.Context) {
	controllers.LogActivity(c)
}

func ListActivitiesRouteHandler(c *gin.Context) {
	controllers.ListActivities(c)
}
