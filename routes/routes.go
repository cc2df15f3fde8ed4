package routes

import (
	"abysswar/controllers"
	game "abysswar/services/game"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, registry *game.Registry) {
	roomController := &controllers.RoomController{Registry: registry}

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	rooms := api.Group("/rooms")
	{
		rooms.GET("/:code", roomController.GetRoomInfo)
	}
}
