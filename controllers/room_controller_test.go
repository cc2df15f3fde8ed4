package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	game "abysswar/services/game"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRoomRouter(registry *game.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	roomController := &RoomController{Registry: registry}
	router.GET("/rooms/:code", roomController.GetRoomInfo)
	return router
}

func TestGetRoomInfo(t *testing.T) {
	registry := game.NewRegistry()
	room := registry.Create("socket-1", "Alice")

	router := setupRoomRouter(registry)

	req, _ := http.NewRequest("GET", "/rooms/"+room.ID(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, room.ID(), response["code"])
	assert.Equal(t, "setup", response["status"])
	assert.Equal(t, float64(1), response["player_count"])
	assert.Equal(t, []interface{}{"Alice"}, response["players"])
}

func TestGetRoomInfoNotFound(t *testing.T) {
	router := setupRoomRouter(game.NewRegistry())

	req, _ := http.NewRequest("GET", "/rooms/RZZZZZ", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Room not found", response["error"])
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", Ping)

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}
