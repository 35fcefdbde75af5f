package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type ReservationUseCase struct {
	reservationRepo  repository.ReservationRepository
	propertyRepo     repository.PropertyRepository
	notificationRepo repository.NotificationRepository
	log              zerolog.Logger
}

func NewReservationUseCase(
	reservationRepo repository.ReservationRepository,
	propertyRepo repository.PropertyRepository,
	notificationRepo repository.NotificationRepository,
	log zerolog.Logger,
) *ReservationUseCase {
	return &ReservationUseCase{
		reservationRepo:  reservationRepo,
		propertyRepo:     propertyRepo,
		notificationRepo: notificationRepo,
		log:              log,
	}
}

// CreateReservationRequest represents a stay request
type CreateReservationRequest struct {
	PropertyID int       `json:"property_id" binding:"required"`
	MoveInDate time.Time `json:"move_in_date" binding:"required"`
	Months     int       `json:"months" binding:"required,min=1,max=60"`
	Message    *string   `json:"message" binding:"omitempty,max=1000"`
}

// Create files a pending reservation on an active listing
func (uc *ReservationUseCase) Create(ctx context.Context, tenantID int, req *CreateReservationRequest) (*domain.Reservation, error) {
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsActive {
		return nil, domain.ErrPropertyNotFound
	}
	if property.IsOwnedBy(tenantID) {
		return nil, domain.ErrForbidden
	}
	if req.MoveInDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, domain.ErrInvalidInput
	}

	reservation := &domain.Reservation{
		PropertyID: req.PropertyID,
		TenantID:   tenantID,
		MoveInDate: req.MoveInDate,
		Months:     req.Months,
		Message:    req.Message,
		Status:     domain.ReservationPending,
	}

	if err := uc.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	uc.notify(ctx, property.OwnerID, domain.NotificationReservationCreated,
		"New reservation request",
		fmt.Sprintf("A tenant requested a stay at %q from %s", property.Title, req.MoveInDate.Format("2006-01-02")))

	return reservation, nil
}

// Approve lets the listing's landlord accept a pending request
func (uc *ReservationUseCase) Approve(ctx context.Context, id int, actor *domain.User) (*domain.Reservation, error) {
	return uc.decide(ctx, id, actor, domain.ReservationApproved)
}

// Decline lets the listing's landlord reject a pending request
func (uc *ReservationUseCase) Decline(ctx context.Context, id int, actor *domain.User) (*domain.Reservation, error) {
	return uc.decide(ctx, id, actor, domain.ReservationDeclined)
}

func (uc *ReservationUseCase) decide(ctx context.Context, id int, actor *domain.User, status domain.ReservationStatus) (*domain.Reservation, error) {
	reservation, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	property, err := uc.propertyRepo.GetByID(ctx, reservation.PropertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsOwnedBy(actor.ID) && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !reservation.CanTransitionTo(status) {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	reservation.Status = status

	uc.notify(ctx, reservation.TenantID, domain.NotificationReservationUpdated,
		"Reservation "+string(status),
		fmt.Sprintf("Your request for %q was %s", property.Title, status))

	return reservation, nil
}

// Cancel lets the requesting tenant withdraw a pending or approved request
func (uc *ReservationUseCase) Cancel(ctx context.Context, id, tenantID int) (*domain.Reservation, error) {
	reservation, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	if !reservation.CanTransitionTo(domain.ReservationCancelled) {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.reservationRepo.UpdateStatus(ctx, id, domain.ReservationCancelled); err != nil {
		return nil, err
	}
	reservation.Status = domain.ReservationCancelled

	if property, err := uc.propertyRepo.GetByID(ctx, reservation.PropertyID); err == nil {
		uc.notify(ctx, property.OwnerID, domain.NotificationReservationUpdated,
			"Reservation cancelled",
			fmt.Sprintf("A request for %q was cancelled by the tenant", property.Title))
	}

	return reservation, nil
}

// ListMine lists the tenant's own reservations
func (uc *ReservationUseCase) ListMine(ctx context.Context, tenantID int, limit, offset int) ([]*domain.Reservation, error) {
	if limit == 0 {
		limit = 20
	}
	return uc.reservationRepo.ListByTenant(ctx, tenantID, limit, offset)
}

// ListForProperty lists requests on a listing for its landlord
func (uc *ReservationUseCase) ListForProperty(ctx context.Context, propertyID int, actor *domain.User, limit, offset int) ([]*domain.Reservation, error) {
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsOwnedBy(actor.ID) && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if limit == 0 {
		limit = 20
	}
	return uc.reservationRepo.ListByProperty(ctx, propertyID, limit, offset)
}

func (uc *ReservationUseCase) notify(ctx context.Context, userID int, typ domain.NotificationType, title, body string) {
	notification := &domain.Notification{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		uc.log.Warn().Err(err).Int("user_id", userID).Msg("failed to create notification")
	}
}
