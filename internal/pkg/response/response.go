// Package response renders the composer API's JSON envelope. Every endpoint,
// success or failure, answers with the same shape so clients switch on one
// success flag and one error code.
package response

import "github.com/gin-gonic/gin"

// Success writes {"success": true, "data": ...}.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes {"success": false, "error": {"code", "message"}}. The code is
// a stable machine-readable string; the message is for the user.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails is Error plus a details payload, used for per-field
// validation maps and missing-field lists.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
