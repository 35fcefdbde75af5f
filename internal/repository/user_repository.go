package repository

import (
	"context"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetBanned(ctx context.Context, id int, banned bool) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}
