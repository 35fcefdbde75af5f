package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/usecase/reservation"
)

type ReservationHandler struct {
	reservationUseCase *reservation.ReservationUseCase
}

func NewReservationHandler(reservationUseCase *reservation.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// Create handles POST /reservations
// @Summary Request a stay
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reservation.CreateReservationRequest true "Reservation data"
// @Success 201 {object} domain.Reservation
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req reservation.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.reservationUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Approve handles POST /reservations/:id/approve
// @Summary Approve a pending reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} domain.Reservation
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reservations/{id}/approve [post]
func (h *ReservationHandler) Approve(c *gin.Context) {
	h.decide(c, h.reservationUseCase.Approve)
}

// Decline handles POST /reservations/:id/decline
// @Summary Decline a pending reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} domain.Reservation
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reservations/{id}/decline [post]
func (h *ReservationHandler) Decline(c *gin.Context) {
	h.decide(c, h.reservationUseCase.Decline)
}

func (h *ReservationHandler) decide(
	c *gin.Context,
	action func(ctx context.Context, id int, actor *domain.User) (*domain.Reservation, error),
) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid reservation id"})
		return
	}

	updated, err := action(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Cancel handles POST /reservations/:id/cancel
// @Summary Cancel my reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} domain.Reservation
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid reservation id"})
		return
	}

	updated, err := h.reservationUseCase.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ListMine handles GET /reservations/mine
// @Summary My reservation requests
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Reservation
// @Failure 401 {object} ErrorResponse
// @Router /reservations/mine [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reservations, err := h.reservationUseCase.ListMine(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// ListForProperty handles GET /properties/:id/reservations
// @Summary Requests on my listing
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {array} domain.Reservation
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id}/reservations [get]
func (h *ReservationHandler) ListForProperty(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reservations, err := h.reservationUseCase.ListForProperty(c.Request.Context(), propertyID, actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}
