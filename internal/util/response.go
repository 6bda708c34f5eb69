package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fail writes the error body used across the API.
func Fail(c *gin.Context, httpStatus int, detail string) {
	c.JSON(httpStatus, gin.H{
		"detail": detail,
	})
}

// Message writes a confirmation body with a short summary and detail.
func Message(c *gin.Context, message, detail string) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"detail":  detail,
	})
}
