// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform JSON error body. Handlers never leak
// driver or runtime detail through this; the message is the whole payload.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
