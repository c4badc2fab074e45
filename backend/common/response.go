package common

import "github.com/gin-gonic/gin"

// ErrorResponse is the standard error body: every error carries a message
// in the "error" field, never a stack trace.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is used by endpoints that answer with a status message
// instead of a resource body.
type MessageResponse struct {
	Message string `json:"message"`
}

func RespError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, ErrorResponse{Error: msg})
}

// RespInternalError logs the underlying error server-side and answers with
// the message plus the error text.
func RespInternalError(c *gin.Context, statusCode int, msg string, err error) {
	errMsg := msg
	if err != nil {
		errMsg = msg + ": " + err.Error()
		SysError(errMsg)
	}
	c.JSON(statusCode, ErrorResponse{Error: errMsg})
}

func RespMessage(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, MessageResponse{Message: msg})
}
