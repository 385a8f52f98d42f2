package routes

import (
	"github.com/FrankCasanova/fastapi-blog/config"
	"github.com/FrankCasanova/fastapi-blog/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAuthRoutes(router *gin.Engine, db *gorm.DB, settings *config.Settings) {
	router.POST("/token", controllers.Login(db, settings))
}

func SetupUserRoutes(router *gin.Engine, db *gorm.DB, settings *config.Settings) {
	router.POST("/users", controllers.CreateUser(db))

	me := router.Group("/me")
	me.Use(controllers.AuthMiddleware(db, settings))
	{
		me.GET("", controllers.Me())
	}
}
