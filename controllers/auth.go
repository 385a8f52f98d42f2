package controllers

import (
	"net/http"
	"strings"

	"github.com/FrankCasanova/fastapi-blog/config"
	"github.com/FrankCasanova/fastapi-blog/models"
	"github.com/FrankCasanova/fastapi-blog/schemas"
	"github.com/FrankCasanova/fastapi-blog/security"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// contextUserKey is where the auth middleware stores the resolved user.
const contextUserKey = "current_user"

const credentialsMessage = "Could not validate credentials"

// authenticateUser looks up a user by email and verifies the password.
// An unknown email and a wrong password are indistinguishable to the
// caller.
func authenticateUser(db *gorm.DB, email, password string) (*models.User, bool) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, false
	}
	if !security.CheckPassword(password, user.Password) {
		return nil, false
	}
	return &user, true
}

// Login handles POST /token: an OAuth2-style password form exchanged
// for a bearer access token.
func Login(db *gorm.DB, settings *config.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form schemas.LoginForm
		if err := c.ShouldBind(&form); err != nil {
			fail(c, http.StatusUnprocessableEntity, "Invalid login form: "+err.Error())
			return
		}

		user, ok := authenticateUser(db, form.Username, form.Password)
		if !ok {
			fail(c, http.StatusUnauthorized, "Incorrect username or password")
			return
		}

		accessToken, err := security.CreateAccessToken(user.Email, settings)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		c.JSON(http.StatusOK, schemas.Token{
			AccessToken: accessToken,
			TokenType:   "bearer",
		})
	}
}

// AuthMiddleware resolves the current user from the bearer token and
// aborts with 401 on any failure. The token is read from the
// Authorization header or, failing that, the access_token cookie.
func AuthMiddleware(db *gorm.DB, settings *config.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Not authenticated")
			return
		}

		subject, err := security.ParseAccessToken(tokenString, settings)
		if err != nil {
			abortUnauthorized(c, credentialsMessage)
			return
		}

		var user models.User
		if err := db.Where("email = ?", subject).First(&user).Error; err != nil {
			abortUnauthorized(c, credentialsMessage)
			return
		}

		c.Set(contextUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	user, _ := c.MustGet(contextUserKey).(*models.User)
	return user
}

func extractToken(c *gin.Context) string {
	token := c.GetHeader("Authorization")
	if token == "" {
		token, _ = c.Cookie("access_token")
	}
	return strings.TrimPrefix(token, "Bearer ")
}
