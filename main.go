package main

import (
	"abysswar/middleware"
	"abysswar/routes"
	game "abysswar/services/game"
	"abysswar/services/socket_io"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	// Single in-process room registry, injected into both the HTTP
	// surface and the socket server.
	registry := game.NewRegistry()

	routes.SetupRoutes(r, registry)

	sio := &socket_io.MySocketServer{}
	sio.Start(r, registry)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("The Abyss War server is alive, listening on port %s", port)

	if os.Getenv("USE_HTTPS") == "true" {
		certFile := os.Getenv("TLS_CERT_FILE")
		keyFile := os.Getenv("TLS_KEY_FILE")

		if err := r.RunTLS(":"+port, certFile, keyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
