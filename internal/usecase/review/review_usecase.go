package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type ReviewUseCase struct {
	reviewRepo   repository.ReviewRepository
	propertyRepo repository.PropertyRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	propertyRepo repository.PropertyRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
	}
}

// CreateReviewRequest represents review creation request
type CreateReviewRequest struct {
	PropertyID int     `json:"property_id" binding:"required"`
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
	Comment    *string `json:"comment" binding:"omitempty,max=1000"`
}

// ReviewListResponse is a page of reviews plus the aggregate
type ReviewListResponse struct {
	Reviews []*domain.Review      `json:"reviews"`
	Summary *domain.RatingSummary `json:"summary"`
}

// Create files a review; one per (tenant, listing)
func (uc *ReviewUseCase) Create(ctx context.Context, tenantID int, req *CreateReviewRequest) (*domain.Review, error) {
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.IsOwnedBy(tenantID) {
		return nil, domain.ErrForbidden
	}

	if _, err := uc.reviewRepo.GetByTenantAndProperty(ctx, tenantID, req.PropertyID); err == nil {
		return nil, domain.ErrReviewAlreadyExists
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}

	review := &domain.Review{
		PropertyID: req.PropertyID,
		TenantID:   tenantID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ListByProperty returns a review page with the aggregated rating
func (uc *ReviewUseCase) ListByProperty(ctx context.Context, propertyID int, limit, offset int) (*ReviewListResponse, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = 20
	}

	reviews, err := uc.reviewRepo.ListByProperty(ctx, propertyID, limit, offset)
	if err != nil {
		return nil, err
	}

	summary, err := uc.reviewRepo.GetRatingSummary(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	return &ReviewListResponse{Reviews: reviews, Summary: summary}, nil
}

// Delete removes a review; only its author or an admin may do so
func (uc *ReviewUseCase) Delete(ctx context.Context, id int, actor *domain.User) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.TenantID != actor.ID && actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.reviewRepo.Delete(ctx, id)
}
