package response

import "github.com/gin-gonic/gin"

// Error writes the flat error body every endpoint uses.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func Unauthorized(c *gin.Context) {
	Error(c, 401, "Unauthorized")
}

func ServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
