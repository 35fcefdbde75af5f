package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationApproved  ReservationStatus = "approved"
	ReservationDeclined  ReservationStatus = "declined"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID         int               `json:"id" db:"id"`
	PropertyID int               `json:"property_id" db:"property_id"`
	TenantID   int               `json:"tenant_id" db:"tenant_id"`
	MoveInDate time.Time         `json:"move_in_date" db:"move_in_date"`
	Months     int               `json:"months" db:"months"`
	Message    *string           `json:"message" db:"message"`
	Status     ReservationStatus `json:"status" db:"status"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" db:"updated_at"`
}

// CanTransitionTo enforces the reservation state machine: only pending
// requests can be decided, and approval cannot be undone by the tenant.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch next {
	case ReservationApproved, ReservationDeclined:
		return r.Status == ReservationPending
	case ReservationCancelled:
		return r.Status == ReservationPending || r.Status == ReservationApproved
	default:
		return false
	}
}
