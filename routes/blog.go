package routes

import (
	"github.com/FrankCasanova/fastapi-blog/config"
	"github.com/FrankCasanova/fastapi-blog/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupBlogRoutes(router *gin.Engine, db *gorm.DB, settings *config.Settings) {
	blogs := router.Group("/blogs")
	{
		blogs.GET("", controllers.ListBlogs(db))
		blogs.GET("/:id", controllers.RetrieveBlog(db))
	}

	// Mutations require an authenticated author.
	protected := router.Group("/blogs")
	protected.Use(controllers.AuthMiddleware(db, settings))
	{
		protected.POST("", controllers.CreateBlog(db))
		protected.PUT("/:id", controllers.UpdateBlog(db))
		protected.DELETE("/:id", controllers.DeleteBlog(db))
	}
}
