package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/youruser/memeapp/internal/api"
	"github.com/youruser/memeapp/internal/templates"
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// Load templates at startup (best-effort)
	_, err := templates.LoadFromDataDir(dataDir)
	if err != nil {
		log.Println("Warning: failed to load template CSVs at startup:", err)
	}

	r := gin.Default()
	api.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
