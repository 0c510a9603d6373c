package routes

import (
	"ecostep/controllers"

	"github.com/gin-gonic/gin"
)

func ListChallengesRouteHandler(c *gin.Context) {
	controllers.ListChallenges(c)
}

func JoinChallengeRouteHandler(c *gin.Context) {
	controllers.JoinChallenge(c)
}

func GetLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetLeaderboard(c)
}
