package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
)

// RecipientEmailCache caches recipient email lookups in front of the store.
// Batch operations resolve one email per item; the cache keeps repeated
// transitions for the same parcel off the database.
//
// Implementations degrade gracefully: a cache failure behaves like a miss
// and must never fail the lifecycle operation.
type RecipientEmailCache interface {
	// Get returns the cached email for a parcel and whether it was present.
	Get(ctx context.Context, id kernel.UUID) (string, bool)

	// Set stores the email for a parcel. Best-effort.
	Set(ctx context.Context, id kernel.UUID, email string)
}
