package property

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/infrastructure/gemini"
	"github.com/roomnest-app/roomnest-backend/internal/infrastructure/storage"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	reviewRepo   repository.ReviewRepository
	storage      *storage.LocalStorage
	geminiClient *gemini.GeminiClient
}

func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	reviewRepo repository.ReviewRepository,
	store *storage.LocalStorage,
	geminiClient *gemini.GeminiClient,
) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		reviewRepo:   reviewRepo,
		storage:      store,
		geminiClient: geminiClient,
	}
}

// CreatePropertyRequest represents listing creation request
type CreatePropertyRequest struct {
	Title         string     `json:"title" binding:"required,min=3,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	Type          string     `json:"type" binding:"required,oneof=apartment house studio shared_room"`
	City          string     `json:"city" binding:"required,max=100"`
	Address       string     `json:"address" binding:"required,max=300"`
	MonthlyRent   float64    `json:"monthly_rent" binding:"required,gt=0"`
	Deposit       *float64   `json:"deposit" binding:"omitempty,gte=0"`
	Rooms         int        `json:"rooms" binding:"required,min=1,max=50"`
	AreaSqm       *float64   `json:"area_sqm" binding:"omitempty,gt=0"`
	Amenities     []string   `json:"amenities" binding:"omitempty,max=30"`
	Furnished     bool       `json:"furnished"`
	AvailableFrom *time.Time `json:"available_from"`
}

// UpdatePropertyRequest represents listing update request
type UpdatePropertyRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=3,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	City          *string    `json:"city" binding:"omitempty,max=100"`
	Address       *string    `json:"address" binding:"omitempty,max=300"`
	MonthlyRent   *float64   `json:"monthly_rent" binding:"omitempty,gt=0"`
	Deposit       *float64   `json:"deposit" binding:"omitempty,gte=0"`
	Rooms         *int       `json:"rooms" binding:"omitempty,min=1,max=50"`
	AreaSqm       *float64   `json:"area_sqm" binding:"omitempty,gt=0"`
	Amenities     *[]string  `json:"amenities" binding:"omitempty,max=30"`
	Furnished     *bool      `json:"furnished"`
	AvailableFrom *time.Time `json:"available_from"`
	IsActive      *bool      `json:"is_active"`
}

// SearchRequest represents listing search filters
type SearchRequest struct {
	City      *string  `form:"city"`
	Type      *string  `form:"type" binding:"omitempty,oneof=apartment house studio shared_room"`
	MinRent   *float64 `form:"min_rent" binding:"omitempty,gte=0"`
	MaxRent   *float64 `form:"max_rent" binding:"omitempty,gte=0"`
	MinRooms  *int     `form:"min_rooms" binding:"omitempty,min=1"`
	Furnished *bool    `form:"furnished"`
	Verified  bool     `form:"verified"`
	Limit     int      `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset    int      `form:"offset" binding:"omitempty,min=0"`
}

// PropertyResponse is a listing with its aggregated rating
type PropertyResponse struct {
	*domain.Property
	Rating *domain.RatingSummary `json:"rating,omitempty"`
}

// GenerateDescriptionRequest represents AI description generation request
type GenerateDescriptionRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=200"`
	City        string   `json:"city" binding:"required,max=100"`
	Rooms       int      `json:"rooms" binding:"required,min=1,max=50"`
	MonthlyRent float64  `json:"monthly_rent" binding:"required,gt=0"`
	Amenities   []string `json:"amenities" binding:"omitempty,max=30"`
}

// Create creates a new listing owned by the given landlord
func (uc *PropertyUseCase) Create(ctx context.Context, ownerID int, req *CreatePropertyRequest) (*domain.Property, error) {
	property := &domain.Property{
		OwnerID:       ownerID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          domain.PropertyType(req.Type),
		City:          req.City,
		Address:       req.Address,
		MonthlyRent:   req.MonthlyRent,
		Deposit:       req.Deposit,
		Rooms:         req.Rooms,
		AreaSqm:       req.AreaSqm,
		Amenities:     req.Amenities,
		Furnished:     req.Furnished,
		AvailableFrom: req.AvailableFrom,
		IsActive:      true,
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

// Get returns one listing with its rating summary
func (uc *PropertyUseCase) Get(ctx context.Context, id int) (*PropertyResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := &PropertyResponse{Property: property}
	if summary, err := uc.reviewRepo.GetRatingSummary(ctx, id); err == nil {
		response.Rating = summary
	}
	return response, nil
}

// Update modifies a listing; only the owner (or an admin) may do so
func (uc *PropertyUseCase) Update(ctx context.Context, id int, actor *domain.User, req *UpdatePropertyRequest) (*domain.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !property.IsOwnedBy(actor.ID) && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = req.Description
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.MonthlyRent != nil {
		property.MonthlyRent = *req.MonthlyRent
	}
	if req.Deposit != nil {
		property.Deposit = req.Deposit
	}
	if req.Rooms != nil {
		property.Rooms = *req.Rooms
	}
	if req.AreaSqm != nil {
		property.AreaSqm = req.AreaSqm
	}
	if req.Amenities != nil {
		property.Amenities = *req.Amenities
	}
	if req.Furnished != nil {
		property.Furnished = *req.Furnished
	}
	if req.AvailableFrom != nil {
		property.AvailableFrom = req.AvailableFrom
	}
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
	}

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return property, nil
}

// Delete removes a listing; only the owner (or an admin) may do so
func (uc *PropertyUseCase) Delete(ctx context.Context, id int, actor *domain.User) error {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !property.IsOwnedBy(actor.ID) && actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	for _, photo := range property.Photos {
		_ = uc.storage.Delete(photo)
	}
	return uc.propertyRepo.Delete(ctx, id)
}

// Search lists active listings matching the filters
func (uc *PropertyUseCase) Search(ctx context.Context, req *SearchRequest) ([]*domain.Property, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 20
	}

	filter := repository.PropertyFilter{
		City:         req.City,
		MinRent:      req.MinRent,
		MaxRent:      req.MaxRent,
		MinRooms:     req.MinRooms,
		Furnished:    req.Furnished,
		VerifiedOnly: req.Verified,
	}
	if req.Type != nil {
		t := domain.PropertyType(*req.Type)
		filter.Type = &t
	}

	return uc.propertyRepo.Search(ctx, filter, limit, req.Offset)
}

// ListMine lists the landlord's own listings
func (uc *PropertyUseCase) ListMine(ctx context.Context, ownerID int, limit, offset int) ([]*domain.Property, error) {
	if limit == 0 {
		limit = 20
	}
	return uc.propertyRepo.ListByOwner(ctx, ownerID, limit, offset)
}

// UploadPhoto stores a photo and attaches it to the listing
func (uc *PropertyUseCase) UploadPhoto(ctx context.Context, id int, actor *domain.User, content io.Reader, filename string) (string, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !property.IsOwnedBy(actor.ID) && actor.Role != domain.RoleAdmin {
		return "", domain.ErrForbidden
	}

	photoURL, err := uc.storage.Save(content, filename)
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}

	if err := uc.propertyRepo.AddPhoto(ctx, id, photoURL); err != nil {
		_ = uc.storage.Delete(photoURL)
		return "", err
	}
	return photoURL, nil
}

// GenerateDescription drafts a listing description from its facts
func (uc *PropertyUseCase) GenerateDescription(ctx context.Context, req *GenerateDescriptionRequest) (string, error) {
	if uc.geminiClient == nil {
		return "", fmt.Errorf("gemini client is not initialized")
	}
	return uc.geminiClient.GenerateListingDescription(ctx, req.Title, req.City, req.Rooms, req.MonthlyRent, req.Amenities)
}
