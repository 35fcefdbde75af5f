package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roomnest-app/roomnest-backend/internal/usecase/review"
)

type ReviewHandler struct {
	reviewUseCase *review.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *review.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// Create handles POST /reviews
// @Summary Review a listing
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body review.CreateReviewRequest true "Review data"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.reviewUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListByProperty handles GET /properties/:id/reviews
// @Summary Reviews of a listing
// @Tags reviews
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} review.ReviewListResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id}/reviews [get]
func (h *ReviewHandler) ListByProperty(c *gin.Context) {
	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	response, err := h.reviewUseCase.ListByProperty(c.Request.Context(), propertyID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /reviews/:id
// @Summary Delete a review
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid review id"})
		return
	}

	if err := h.reviewUseCase.Delete(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
