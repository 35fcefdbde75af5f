package repository

import (
	"context"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int) (*domain.Reservation, error)
	ListByTenant(ctx context.Context, tenantID int, limit, offset int) ([]*domain.Reservation, error)
	ListByProperty(ctx context.Context, propertyID int, limit, offset int) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int, status domain.ReservationStatus) error
}
