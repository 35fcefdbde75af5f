package domain

import "time"

type NotificationType string

const (
	NotificationReservationCreated NotificationType = "reservation_created"
	NotificationReservationUpdated NotificationType = "reservation_updated"
	NotificationNewMatch           NotificationType = "new_match"
	NotificationListingVerified    NotificationType = "listing_verified"
)

type Notification struct {
	ID        int              `json:"id" db:"id"`
	UserID    int              `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Body      string           `json:"body" db:"body"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
