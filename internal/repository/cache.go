package repository

import (
	"context"
	"time"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

// MatchCache stores computed compatibility results per (user, property)
// with a short TTL. A miss is not an error.
type MatchCache interface {
	Get(ctx context.Context, userID, propertyID int) ([]domain.CompatibilityScore, bool, error)
	Set(ctx context.Context, userID, propertyID int, scores []domain.CompatibilityScore, ttl time.Duration) error
	InvalidateProperty(ctx context.Context, propertyID int) error
}

// TokenDenylist revokes issued access tokens until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
