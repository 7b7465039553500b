package repository

import (
	"context"
	"encoding/json"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/tracking"

	"github.com/redis/go-redis/v9"
)

const (
	trackingKeyPrefix = "tracking:"

	// Session-scoped lifetime. The record disappears when the browsing
	// session ends, leaving the device tier as the fallback.
	defaultSessionTTL = 30 * time.Minute
)

// TrackingRedisTier is the session tier of the tracking store: the fast,
// authoritative read path, expiring with the session.
type TrackingRedisTier struct {
	client *redis.Client
	ttl    time.Duration
}

var _ tracking.Tier = (*TrackingRedisTier)(nil)

func NewTrackingRedisTier(client *redis.Client) *TrackingRedisTier {
	return &TrackingRedisTier{client: client, ttl: defaultSessionTTL}
}

func (t *TrackingRedisTier) Get(ctx context.Context, key string) (entities.TrackingParameters, bool, error) {
	raw, err := t.client.Get(ctx, trackingKeyPrefix+key).Result()
	if err == redis.Nil {
		return entities.TrackingParameters{}, false, nil
	}
	if err != nil {
		return entities.TrackingParameters{}, false, err
	}

	var params entities.TrackingParameters
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return entities.TrackingParameters{}, false, err
	}
	return params, true, nil
}

func (t *TrackingRedisTier) Put(ctx context.Context, key string, params entities.TrackingParameters) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return t.client.Set(ctx, trackingKeyPrefix+key, raw, t.ttl).Err()
}
