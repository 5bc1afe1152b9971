package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"smartpocket-ai/backend/ai"
	"smartpocket-ai/backend/config"
	"smartpocket-ai/backend/database"
	"smartpocket-ai/backend/routes"
	"smartpocket-ai/backend/store"
)

func main() {
	cfg := config.Load()

	pool := database.Connect(cfg.DatabaseURL)
	defer pool.Close()
	database.EnsureSchema(pool)
	st := store.New(pool)

	aiClient, err := ai.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("ai client error: %v", err)
	}
	defer aiClient.Close()

	r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, cfg, st, aiClient)

	log.Printf("server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
