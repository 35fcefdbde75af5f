package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roomnest-app/roomnest-backend/internal/usecase/admin"
)

type AdminHandler struct {
	adminUseCase *admin.AdminUseCase
}

func NewAdminHandler(adminUseCase *admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type setVerifiedRequest struct {
	Verified bool `json:"verified"`
}

type setBannedRequest struct {
	Banned bool `json:"banned"`
}

// ListPendingListings handles GET /admin/listings/pending
// @Summary Listings awaiting verification
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Property
// @Failure 403 {object} ErrorResponse
// @Router /admin/listings/pending [get]
func (h *AdminHandler) ListPendingListings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	properties, err := h.adminUseCase.ListPendingListings(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// SetListingVerified handles POST /admin/listings/:id/verify
// @Summary Verify or unverify a listing
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path int true "Property ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /admin/listings/{id}/verify [post]
func (h *AdminHandler) SetListingVerified(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	var req setVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.adminUseCase.SetListingVerified(c.Request.Context(), id, req.Verified); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetUserBanned handles POST /admin/users/:id/ban
// @Summary Ban or unban an account
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id}/ban [post]
func (h *AdminHandler) SetUserBanned(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	var req setBannedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.adminUseCase.SetUserBanned(c.Request.Context(), id, req.Banned); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUsers handles GET /admin/users
// @Summary List accounts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.User
// @Failure 403 {object} ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.adminUseCase.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
