package repository

import (
	"context"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

// PropertyFilter narrows a listing search. Nil fields are ignored.
type PropertyFilter struct {
	City         *string
	Type         *domain.PropertyType
	MinRent      *float64
	MaxRent      *float64
	MinRooms     *int
	Furnished    *bool
	VerifiedOnly bool
}

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, filter PropertyFilter, limit, offset int) ([]*domain.Property, error)
	ListByOwner(ctx context.Context, ownerID int, limit, offset int) ([]*domain.Property, error)
	ListUnverified(ctx context.Context, limit, offset int) ([]*domain.Property, error)
	SetVerified(ctx context.Context, id int, verified bool) error
	AddPhoto(ctx context.Context, id int, photoURL string) error
}
