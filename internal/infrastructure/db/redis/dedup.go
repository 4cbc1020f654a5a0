package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// dedupTTL is the window within which a repeated update fingerprint counts
// as a duplicate rather than a new write.
const dedupTTL = time.Hour

// UpdateDeduper provides idempotency checks for the write path, backed by
// Redis. Key format: update:<shipment_id>:<fingerprint>
type UpdateDeduper struct {
	client *redis.Client
}

// NewUpdateDeduper creates an UpdateDeduper wrapping the given Redis client.
func NewUpdateDeduper(client *redis.Client) *UpdateDeduper {
	return &UpdateDeduper{client: client}
}

// Seen atomically records the fingerprint and reports whether it was already
// present. SET NX makes the check-and-mark a single round trip, so two
// concurrent retries of the same update cannot both pass.
func (d *UpdateDeduper) Seen(ctx context.Context, identifier, fingerprint string) (bool, error) {
	set, err := d.client.SetNX(ctx, d.key(identifier, fingerprint), "1", dedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return !set, nil
}

func (d *UpdateDeduper) key(identifier, fingerprint string) string {
	return fmt.Sprintf("update:%s:%s", identifier, fingerprint)
}
