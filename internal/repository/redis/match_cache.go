package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
	"github.com/roomnest-app/roomnest-backend/internal/repository"
)

type matchCache struct {
	client *goredis.Client
}

func NewMatchCache(client *goredis.Client) repository.MatchCache {
	return &matchCache{client: client}
}

func matchKey(userID, propertyID int) string {
	return fmt.Sprintf("matches:%d:%d", propertyID, userID)
}

// propertyMatchPattern covers every user's cached results for one property,
// so a single profile write invalidates all of them.
func propertyMatchPattern(propertyID int) string {
	return fmt.Sprintf("matches:%d:*", propertyID)
}

func (c *matchCache) Get(ctx context.Context, userID, propertyID int) ([]domain.CompatibilityScore, bool, error) {
	data, err := c.client.Get(ctx, matchKey(userID, propertyID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var scores []domain.CompatibilityScore
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, false, err
	}
	return scores, true, nil
}

func (c *matchCache) Set(ctx context.Context, userID, propertyID int, scores []domain.CompatibilityScore, ttl time.Duration) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, matchKey(userID, propertyID), data, ttl).Err()
}

func (c *matchCache) InvalidateProperty(ctx context.Context, propertyID int) error {
	iter := c.client.Scan(ctx, 0, propertyMatchPattern(propertyID), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
