package repository

import (
	"context"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID int, limit, offset int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int) error
	CountUnread(ctx context.Context, userID int) (int, error)
}
