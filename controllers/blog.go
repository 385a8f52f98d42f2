package controllers

import (
	"net/http"
	"strconv"

	"github.com/FrankCasanova/fastapi-blog/models"
	"github.com/FrankCasanova/fastapi-blog/schemas"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBlog handles POST /blogs. The blog is owned by the
// authenticated user; the slug is derived from the title.
func CreateBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload schemas.BlogCreate
		if err := c.ShouldBindJSON(&payload); err != nil {
			fail(c, http.StatusUnprocessableEntity, "Invalid blog data: "+err.Error())
			return
		}

		author := CurrentUser(c)
		blog := models.Blog{
			Title:    payload.Title,
			Slug:     payload.Slug(),
			Content:  payload.Content,
			AuthorID: author.ID,
			IsActive: true,
		}

		if err := db.Create(&blog).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to create blog")
			return
		}

		c.JSON(http.StatusCreated, schemas.NewShowBlog(&blog))
	}
}

// RetrieveBlog handles GET /blogs/:id.
func RetrieveBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, ok := findBlog(db, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, schemas.NewShowBlog(blog))
	}
}

// ListBlogs handles GET /blogs: active blogs only, newest first.
func ListBlogs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var blogs []models.Blog
		if err := db.Where("is_active = ?", true).
			Order("created_at DESC, id DESC").
			Find(&blogs).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to retrieve blogs")
			return
		}
		c.JSON(http.StatusOK, schemas.NewShowBlogList(blogs))
	}
}

// UpdateBlog handles PUT /blogs/:id. Only the owning author may
// update; the slug is regenerated whenever the title changes.
func UpdateBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload schemas.BlogUpdate
		if err := c.ShouldBindJSON(&payload); err != nil {
			fail(c, http.StatusUnprocessableEntity, "Invalid blog data: "+err.Error())
			return
		}

		blog, ok := findBlog(db, c)
		if !ok {
			return
		}

		if blog.AuthorID != CurrentUser(c).ID {
			fail(c, http.StatusForbidden, "Only the author can modify the blog")
			return
		}

		blog.Title = payload.Title
		blog.Slug = payload.Slug()
		blog.Content = payload.Content

		if err := db.Save(blog).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to update blog")
			return
		}

		c.JSON(http.StatusOK, schemas.NewShowBlog(blog))
	}
}

// DeleteBlog handles DELETE /blogs/:id. Only the owning author may
// delete. Deletion is soft: the row keeps its history but disappears
// from retrieval and listing.
func DeleteBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, ok := findBlog(db, c)
		if !ok {
			return
		}

		if blog.AuthorID != CurrentUser(c).ID {
			fail(c, http.StatusForbidden, "Only the author can delete the blog")
			return
		}

		if err := db.Delete(blog).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to delete blog")
			return
		}

		c.JSON(http.StatusOK, APIResponse{
			Success: true,
			Message: "Blog deleted successfully",
		})
	}
}

// findBlog loads the blog addressed by the :id param, answering 404
// itself when the id is malformed or the blog is absent.
func findBlog(db *gorm.DB, c *gin.Context) (*models.Blog, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		fail(c, http.StatusNotFound, "Blog not found")
		return nil, false
	}

	var blog models.Blog
	if err := db.First(&blog, id).Error; err != nil {
		fail(c, http.StatusNotFound, "Blog not found")
		return nil, false
	}
	return &blog, true
}
