package controllers

import (
	"net/http"

	game "abysswar/services/game"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Registry *game.Registry
}

// GetRoomInfo gets public information about a live room with the provided
// code: enough for a client to decide whether the code is worth joining,
// without exposing card state.
func (rc *RoomController) GetRoomInfo(c *gin.Context) {
	code := c.Param("code")

	room, ok := rc.Registry.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	state := room.Snapshot()
	names := make([]string, len(state.Players))
	for i, player := range state.Players {
		names[i] = player.Name
	}

	c.JSON(http.StatusOK, gin.H{
		"code":         state.RoomID,
		"status":       state.Status,
		"player_count": len(state.Players),
		"players":      names,
	})
}
