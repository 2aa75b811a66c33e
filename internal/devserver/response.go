package devserver

import "github.com/gin-gonic/gin"

// envelope is the response wrapper every endpoint uses.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// respond sends a success envelope.
func respond(c *gin.Context, data any) {
	c.JSON(200, envelope{Success: true, Data: data})
}

// respondNull sends a success envelope with an explicit null payload.
func respondNull(c *gin.Context) {
	c.JSON(200, envelope{Success: true})
}

// respondError sends a failure envelope with the given HTTP status and
// user-facing message.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, envelope{Success: false, Message: message})
}
