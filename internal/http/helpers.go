package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the error body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondBadRequest(c *gin.Context, message string) {
	c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs err and hides it from the client.
func respondInternalError(c *gin.Context, err error, action string) {
	log.Error().Err(err).Str("action", action).Msg("request failed")
	c.IndentedJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
