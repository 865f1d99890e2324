package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type entryResponse struct {
	Message string     `json:"message"`
	Entry   models.Row `json:"entry"`
}

func Ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes the failure body. err, when present, is exposed as details.
func Error(c *gin.Context, status int, message string, err error) {
	resp := errorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}
