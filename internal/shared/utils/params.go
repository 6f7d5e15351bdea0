package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard/internal/shared/constants"
	"taskboard/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(value), nil
}

// CallerID returns the authenticated user's ID from the request context.
// The auth middleware guarantees it is present on protected routes.
func CallerID(c *gin.Context) (uint, error) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("not authenticated")
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("not authenticated")
	}
	return userID, nil
}
