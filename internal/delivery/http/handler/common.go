package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain sentinel errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrRoommateProfileNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyTaken),
		errors.Is(err, domain.ErrRoommateProfileExists),
		errors.Is(err, domain.ErrReviewAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUserBanned),
		errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// currentUserID reads the authenticated user id set by the auth middleware
func currentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(int)
	return id, ok
}

// currentActor builds the acting user from the middleware context
func currentActor(c *gin.Context) (*domain.User, bool) {
	id, ok := currentUserID(c)
	if !ok {
		return nil, false
	}
	role, _ := c.Get("role")
	roleStr, _ := role.(string)
	return &domain.User{ID: id, Role: domain.UserRole(roleStr)}, true
}
