package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roomnest-app/roomnest-backend/internal/usecase/roommate"
)

type RoommateHandler struct {
	roommateUseCase *roommate.RoommateUseCase
}

func NewRoommateHandler(roommateUseCase *roommate.RoommateUseCase) *RoommateHandler {
	return &RoommateHandler{
		roommateUseCase: roommateUseCase,
	}
}

func propertyIDQuery(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Query("property_id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "property_id query parameter is required"})
		return 0, false
	}
	return id, true
}

// CreateProfile handles POST /roommates
// @Summary Opt into roommate matching
// @Tags roommates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body roommate.CreateProfileRequest true "Profile data"
// @Success 201 {object} domain.RoommateProfile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /roommates [post]
func (h *RoommateHandler) CreateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req roommate.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := h.roommateUseCase.CreateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetMyProfile handles GET /roommates/me
// @Summary Get my roommate profile for a property
// @Tags roommates
// @Security BearerAuth
// @Produce json
// @Param property_id query int true "Property ID"
// @Success 200 {object} domain.RoommateProfile
// @Failure 404 {object} ErrorResponse
// @Router /roommates/me [get]
func (h *RoommateHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	propertyID, ok := propertyIDQuery(c)
	if !ok {
		return
	}

	profile, err := h.roommateUseCase.GetMyProfile(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile handles PUT /roommates/me
// @Summary Update my roommate profile
// @Tags roommates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param property_id query int true "Property ID"
// @Param request body roommate.UpdateProfileRequest true "Profile update"
// @Success 200 {object} domain.RoommateProfile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /roommates/me [put]
func (h *RoommateHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	propertyID, ok := propertyIDQuery(c)
	if !ok {
		return
	}

	var req roommate.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := h.roommateUseCase.UpdateProfile(c.Request.Context(), userID, propertyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeactivateMyProfile handles DELETE /roommates/me
// @Summary Leave roommate matching for a property
// @Tags roommates
// @Security BearerAuth
// @Param property_id query int true "Property ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /roommates/me [delete]
func (h *RoommateHandler) DeactivateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	propertyID, ok := propertyIDQuery(c)
	if !ok {
		return
	}

	if err := h.roommateUseCase.DeactivateProfile(c.Request.Context(), userID, propertyID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FindMatches handles GET /roommates/matches
// @Summary Ranked roommate matches for a property
// @Description Scores every other active seeker against the caller's profile
// @Tags roommates
// @Security BearerAuth
// @Produce json
// @Param property_id query int true "Property ID"
// @Success 200 {array} roommate.MatchResult
// @Failure 404 {object} ErrorResponse
// @Router /roommates/matches [get]
func (h *RoommateHandler) FindMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	propertyID, ok := propertyIDQuery(c)
	if !ok {
		return
	}

	matches, err := h.roommateUseCase.FindMatches(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}
