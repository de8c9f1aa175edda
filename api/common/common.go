package common

import "github.com/gin-gonic/gin"

// Message sends the plain `{"message": ...}` envelope used by endpoints that
// carry no sentinel identifier.
func Message(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"message": message})
}
