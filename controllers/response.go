package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope for error and status-only replies.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{
		Success: false,
		Message: message,
	})
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, APIResponse{
		Success: false,
		Message: message,
	})
}
