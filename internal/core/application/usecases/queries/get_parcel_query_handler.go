package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler reads one package straight from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern;
// the write-side aggregates are never rehydrated for a lookup.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for package lookups.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when the
// package was never registered. The history comes back in insertion order
// and the tracking block stays nil until the package is in route.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	var response GetParcelQueryResponse

	details, err := h.fetchDetails(ctx, query.ParcelID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	response.Details = details

	history, err := h.fetchHistory(ctx, query.ParcelID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	response.History = history

	tracking, err := h.fetchTracking(ctx, query.ParcelID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	response.Tracking = tracking

	return response, nil
}

func (h GetParcelQueryHandler) fetchDetails(
	ctx context.Context,
	parcelID kernel.UUID,
) (ParcelDetailsResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			receiver_address,
			receiver_name,
			receiver_email,
			sender_address,
			sender_name,
			weight_kg,
			registered,
			expected_delivery_date
		FROM package_details
		WHERE id = ?
	`, parcelID.String()).Rows()
	if err != nil {
		return ParcelDetailsResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelDetailsResponse{}, err
		}
		return ParcelDetailsResponse{}, errs.NewObjectNotFoundError("packageID", parcelID)
	}

	var details ParcelDetailsResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&details.ReceiverAddress,
		&details.ReceiverName,
		&details.ReceiverEmail,
		&details.SenderAddress,
		&details.SenderName,
		&details.WeightKg,
		&details.Registered,
		&details.ExpectedDeliveryDate,
	)
	if err != nil {
		return ParcelDetailsResponse{}, err
	}

	detailsID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return ParcelDetailsResponse{}, idErr
	}
	details.ID = detailsID

	return details, rows.Err()
}

func (h GetParcelQueryHandler) fetchHistory(
	ctx context.Context,
	parcelID kernel.UUID,
) ([]HistoryEntryResponse, error) {
	entries := make([]HistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			message,
			entry_date
		FROM package_history
		WHERE parcel_id = ?
		ORDER BY entry_date, id
	`, parcelID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HistoryEntryResponse
		var status int

		err = rows.Scan(
			&status,
			&entry.Message,
			&entry.EntryDate,
		)
		if err != nil {
			return nil, err
		}

		entry.Status = parcel.Status(status).String()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h GetParcelQueryHandler) fetchTracking(
	ctx context.Context,
	parcelID kernel.UUID,
) (*TrackingResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			driver_id,
			expected_delivery_time
		FROM package_tracking
		WHERE parcel_id = ?
	`, parcelID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var tracking TrackingResponse
	var driverID uuid.UUID

	err = rows.Scan(
		&driverID,
		&tracking.ExpectedDeliveryTime,
	)
	if err != nil {
		return nil, err
	}

	trackingDriverID, idErr := kernel.UUIDFromBytes(driverID[:])
	if idErr != nil {
		return nil, idErr
	}
	tracking.DriverID = trackingDriverID

	return &tracking, rows.Err()
}
