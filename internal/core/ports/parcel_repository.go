// Package ports defines the interfaces between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for package lifecycle data.
//
// No operation here provides multi-record atomicity on its own; each call is a
// single-record write or read against the backing store. Callers that need the
// registration invariant (details row plus its first history entry) run both
// writes inside one UnitOfWork transaction.
type ParcelRepository interface {
	// InsertDetails persists the registration facts of a new parcel.
	// The parcel must be valid and not already exist.
	InsertDetails(ctx context.Context, aggregate *parcel.Parcel) error

	// GetDetails retrieves a parcel's registration facts by identifier.
	// Returns errs.ObjectNotFoundError if no such parcel exists.
	GetDetails(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// AppendHistory appends one entry to the parcel's status history log.
	// The log is append-only; entries are never updated or deleted.
	AppendHistory(ctx context.Context, entry *parcel.HistoryEntry) error

	// ListHistory returns all history entries for a parcel ordered by entry
	// date ascending (insertion order). An empty slice is not an error.
	ListHistory(ctx context.Context, id kernel.UUID) ([]*parcel.HistoryEntry, error)

	// UpsertTracking creates or overwrites the parcel's tracking record.
	// At most one live tracking record exists per parcel.
	UpsertTracking(ctx context.Context, tracking *parcel.Tracking) error

	// GetTracking retrieves the parcel's tracking record.
	// Returns (nil, nil) when the parcel has not yet left the central facility.
	GetTracking(ctx context.Context, id kernel.UUID) (*parcel.Tracking, error)

	// FindRecipientEmail resolves the recipient email for notification delivery.
	// Returns errs.ObjectNotFoundError if the parcel does not exist.
	FindRecipientEmail(ctx context.Context, id kernel.UUID) (string, error)
}
