// Package response renders the broker's JSON envelope. Every endpoint,
// success or failure, answers with {"success": bool, ...} so clients can
// branch on one field before looking at data or error codes.
package response

import "github.com/gin-gonic/gin"

// Success wraps payload data as {"success": true, "data": ...}.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error answers {"success": false, "error": {"code", "message"}}. Codes are
// stable machine-readable strings (NOT_FOUND, VALIDATION_ERROR, CONFLICT,
// STORAGE_UNAVAILABLE, ...); the message is for humans.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails is Error with an extra free-form details field, used when
// a validation failure has structure worth passing through.
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
