package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type tokenDenylist struct {
	client *goredis.Client
}

func NewTokenDenylist(client *goredis.Client) repository.TokenDenylist {
	return &tokenDenylist{client: client}
}

func denyKey(tokenID string) string {
	return "denied_token:" + tokenID
}

func (d *tokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	// The entry only needs to outlive the token itself.
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denyKey(tokenID), 1, ttl).Err()
}

func (d *tokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, denyKey(tokenID)).Err()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
