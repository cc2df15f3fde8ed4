package controllers

import (
	"github.com/gin-gonic/gin"
)

// Ping is the liveness probe.
func Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}
