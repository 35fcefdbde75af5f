package repository

import (
	"context"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int) (*domain.Review, error)
	GetByTenantAndProperty(ctx context.Context, tenantID, propertyID int) (*domain.Review, error)
	ListByProperty(ctx context.Context, propertyID int, limit, offset int) ([]*domain.Review, error)
	GetRatingSummary(ctx context.Context, propertyID int) (*domain.RatingSummary, error)
	Delete(ctx context.Context, id int) error
}
