package notification

import (
	"context"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

// UnreadCountResponse reports how many notifications are unread
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

// List returns the user's notifications, newest first
func (uc *NotificationUseCase) List(ctx context.Context, userID int, limit, offset int) ([]*domain.Notification, error) {
	if limit == 0 {
		limit = 20
	}
	return uc.notificationRepo.ListByUser(ctx, userID, limit, offset)
}

// MarkRead marks one of the user's notifications as read
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID int) error {
	return uc.notificationRepo.MarkRead(ctx, id, userID)
}

// UnreadCount returns the user's unread notification count
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID int) (*UnreadCountResponse, error) {
	count, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResponse{Unread: count}, nil
}
