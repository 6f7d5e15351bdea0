package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/shared/errors"
)

// ErrorBody is the JSON body returned for every failed request.
type ErrorBody struct {
	Message string `json:"message"`
}

// MessageBody is the JSON body for successful operations with no resource payload.
type MessageBody struct {
	Message string `json:"message"`
}

// OK sends a 200 response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created sends a 201 response with the given payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// OKMessage sends a 200 response carrying only a message.
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error sends an error response with the given status and message.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// ErrorFromErr maps an error to its HTTP status and message. AppErrors map
// 1:1 onto their status code; anything else becomes an opaque 500 so internal
// details never reach the client.
func ErrorFromErr(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: "internal server error"})
}
