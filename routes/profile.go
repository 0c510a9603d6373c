package routes

import (
	"ecostep/controllers"

	"github.com/gin-gonic/gin"
)

func GetProfileRouteHandler(c *gin.Context) {
	controllers.GetProfile(c)
}

func UpdateProfileRouteHandler(c *gin.Context) {
	controllers.UpdateProfile(c)
}

func CompleteOnboardingRouteHandler(c *gin.Context) {
	controllers.CompleteOnboarding(c)
}

func DeleteAccountRouteHandler(c *gin.Context) {
	controllers.DeleteAccount(c)
}
