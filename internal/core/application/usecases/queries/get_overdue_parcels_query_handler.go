package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueParcelsQueryHandler finds packages whose expected delivery time
// has passed while their latest history entry still says in route. Packages
// already delivered keep their tracking row but drop out of this query.
type GetOverdueParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueParcelsQueryHandler creates a handler for overdue package queries.
func NewGetOverdueParcelsQueryHandler(db *gorm.DB) GetOverdueParcelsQueryHandler {
	return GetOverdueParcelsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by how long the package has
// been overdue, longest first.
func (h GetOverdueParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueParcelsQuery,
) ([]GetOverdueParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.parcel_id,
			t.driver_id,
			t.expected_delivery_time
		FROM package_tracking t
		JOIN LATERAL (
			SELECT status
			FROM package_history h
			WHERE h.parcel_id = t.parcel_id
			ORDER BY h.entry_date DESC, h.id DESC
			LIMIT 1
		) latest ON TRUE
		WHERE t.expected_delivery_time < ?
		  AND latest.status = ?
		ORDER BY t.expected_delivery_time
	`, query.AsOf(), parcel.InRoute).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOverdueParcelsQueryResponse
		var parcelID, driverID uuid.UUID

		err = rows.Scan(
			&parcelID,
			&driverID,
			&item.ExpectedDeliveryTime,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ParcelID = id

		driver, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.DriverID = driver

		overdue = append(overdue, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
