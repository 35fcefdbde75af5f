package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roomnest-app/roomnest-backend/internal/usecase/property"
)

type PropertyHandler struct {
	propertyUseCase *property.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *property.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

// Search handles GET /properties
// @Summary Search listings
// @Tags properties
// @Produce json
// @Param city query string false "City"
// @Param type query string false "Property type"
// @Param min_rent query number false "Minimum rent"
// @Param max_rent query number false "Maximum rent"
// @Param min_rooms query int false "Minimum rooms"
// @Param furnished query bool false "Furnished only"
// @Param verified query bool false "Verified only"
// @Success 200 {array} domain.Property
// @Failure 400 {object} ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) Search(c *gin.Context) {
	var req property.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return
	}

	properties, err := h.propertyUseCase.Search(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// Get handles GET /properties/:id
// @Summary Get listing
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} property.PropertyResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	response, err := h.propertyUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /properties
// @Summary Create listing
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body property.CreatePropertyRequest true "Listing data"
// @Success 201 {object} domain.Property
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req property.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.propertyUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /properties/:id
// @Summary Update listing
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param request body property.UpdatePropertyRequest true "Listing update"
// @Success 200 {object} domain.Property
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	var req property.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.propertyUseCase.Update(c.Request.Context(), id, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /properties/:id
// @Summary Delete listing
// @Tags properties
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	if err := h.propertyUseCase.Delete(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMine handles GET /properties/mine
// @Summary My listings
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Property
// @Failure 401 {object} ErrorResponse
// @Router /properties/mine [get]
func (h *PropertyHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	properties, err := h.propertyUseCase.ListMine(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// UploadPhoto handles POST /properties/:id/photos
// @Summary Upload listing photo
// @Tags properties
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Property ID"
// @Param photo formData file true "Photo file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /properties/{id}/photos [post]
func (h *PropertyHandler) UploadPhoto(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read photo"})
		return
	}
	defer file.Close()

	photoURL, err := h.propertyUseCase.UploadPhoto(c.Request.Context(), id, actor, file, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"photo_url": photoURL})
}

// GenerateDescription handles POST /properties/generate-description
// @Summary Generate listing description with AI
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body property.GenerateDescriptionRequest true "Listing facts"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /properties/generate-description [post]
func (h *PropertyHandler) GenerateDescription(c *gin.Context) {
	var req property.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	description, err := h.propertyUseCase.GenerateDescription(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate description"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}
