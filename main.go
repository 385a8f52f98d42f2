package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/FrankCasanova/fastapi-blog/config"
	"github.com/FrankCasanova/fastapi-blog/config/seeders"
	"github.com/FrankCasanova/fastapi-blog/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	gin.SetMode(settings.GinMode)

	db, err := config.ConnectDB(settings)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	seeders.SeedAllData(db, settings)

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	routes.SetupAuthRoutes(router, db, settings)
	routes.SetupUserRoutes(router, db, settings)
	routes.SetupBlogRoutes(router, db, settings)

	router.Static("/static", settings.StaticDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": fmt.Sprintf("%s %s is running", settings.ProjectName, settings.ProjectVersion),
		})
	})

	log.Printf("%s %s starting on %s...", settings.ProjectName, settings.ProjectVersion, settings.ServerAddr())
	if err := router.Run(settings.ServerAddr()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
