package controllers

import (
	"net/http"

	"github.com/FrankCasanova/fastapi-blog/models"
	"github.com/FrankCasanova/fastapi-blog/schemas"
	"github.com/FrankCasanova/fastapi-blog/security"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateUser handles POST /users: registers a new account with a
// hashed password.
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload schemas.UserCreate
		if err := c.ShouldBindJSON(&payload); err != nil {
			fail(c, http.StatusUnprocessableEntity, "Invalid user data: "+err.Error())
			return
		}

		var existing models.User
		if err := db.Where("email = ?", payload.Email).First(&existing).Error; err == nil {
			fail(c, http.StatusConflict, "User with this email already exists")
			return
		}

		hashed, err := security.HashPassword(payload.Password)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to process password")
			return
		}

		user := models.User{
			Email:       payload.Email,
			Password:    hashed,
			IsActive:    true,
			IsSuperuser: false,
		}

		if err := db.Create(&user).Error; err != nil {
			// The unique index backstops the lookup above under
			// concurrent registration.
			fail(c, http.StatusConflict, "User with this email already exists")
			return
		}

		c.JSON(http.StatusCreated, schemas.NewShowUser(&user))
	}
}

// Me handles GET /me for the authenticated user.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, schemas.NewShowUser(user))
	}
}
