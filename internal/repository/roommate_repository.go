package repository

import (
	"context"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

type RoommateProfileRepository interface {
	Create(ctx context.Context, profile *domain.RoommateProfile) error
	GetByID(ctx context.Context, id int) (*domain.RoommateProfile, error)
	GetActiveByUserAndProperty(ctx context.Context, userID, propertyID int) (*domain.RoommateProfile, error)
	ListActiveByProperty(ctx context.Context, propertyID int) ([]*domain.RoommateProfile, error)
	Update(ctx context.Context, profile *domain.RoommateProfile) error
	Deactivate(ctx context.Context, id int) error
}
