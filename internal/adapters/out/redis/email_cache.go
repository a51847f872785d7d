// Package redis provides the Redis-backed recipient email cache.
// The cache is a best-effort read-through layer in front of package_details;
// Redis being down degrades lifecycle operations to an extra database read,
// never to a failure.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	emailKeyPrefix = "parcel:email:"
	emailTTL       = 24 * time.Hour
)

// EmailCache caches recipient email addresses keyed by package identifier.
type EmailCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewEmailCache creates a cache over the given Redis client.
func NewEmailCache(client *redis.Client, logger *slog.Logger) *EmailCache {
	return &EmailCache{
		client: client,
		logger: logger.With("component", "email_cache"),
	}
}

// Get looks up the cached email for a package. Any Redis failure is reported
// as a miss so the caller falls back to the database.
func (c *EmailCache) Get(ctx context.Context, id kernel.UUID) (string, bool) {
	email, err := c.client.Get(ctx, emailKeyPrefix+id.String()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Email cache lookup failed",
				"packageID", id.String(), "error", err)
		}
		return "", false
	}

	return email, true
}

// Set stores the email for a package. Failures are logged and dropped.
func (c *EmailCache) Set(ctx context.Context, id kernel.UUID, email string) {
	if err := c.client.Set(ctx, emailKeyPrefix+id.String(), email, emailTTL).Err(); err != nil {
		c.logger.WarnContext(ctx, "Email cache write failed",
			"packageID", id.String(), "error", err)
	}
}
