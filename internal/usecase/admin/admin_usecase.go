package admin

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type AdminUseCase struct {
	userRepo         repository.UserRepository
	propertyRepo     repository.PropertyRepository
	notificationRepo repository.NotificationRepository
	log              zerolog.Logger
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	notificationRepo repository.NotificationRepository,
	log zerolog.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:         userRepo,
		propertyRepo:     propertyRepo,
		notificationRepo: notificationRepo,
		log:              log,
	}
}

// ListPendingListings returns listings awaiting verification
func (uc *AdminUseCase) ListPendingListings(ctx context.Context, limit, offset int) ([]*domain.Property, error) {
	if limit == 0 {
		limit = 20
	}
	return uc.propertyRepo.ListUnverified(ctx, limit, offset)
}

// SetListingVerified flips a listing's verified flag and tells the owner
func (uc *AdminUseCase) SetListingVerified(ctx context.Context, propertyID int, verified bool) error {
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}

	if err := uc.propertyRepo.SetVerified(ctx, propertyID, verified); err != nil {
		return err
	}

	if verified {
		notification := &domain.Notification{
			UserID: property.OwnerID,
			Type:   domain.NotificationListingVerified,
			Title:  "Listing verified",
			Body:   "Your listing " + property.Title + " passed moderation",
		}
		if err := uc.notificationRepo.Create(ctx, notification); err != nil {
			uc.log.Warn().Err(err).Int("user_id", property.OwnerID).Msg("failed to create verification notification")
		}
	}
	return nil
}

// SetUserBanned bans or unbans an account. Admins cannot ban admins.
func (uc *AdminUseCase) SetUserBanned(ctx context.Context, userID int, banned bool) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.userRepo.SetBanned(ctx, userID, banned)
}

// ListUsers returns accounts for the moderation panel
func (uc *AdminUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if limit == 0 {
		limit = 50
	}
	return uc.userRepo.List(ctx, limit, offset)
}
