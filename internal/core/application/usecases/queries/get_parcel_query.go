package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery retrieves the full picture of one package: registration
// details, the complete status history, and the tracking record when the
// package is on the road.
type GetParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates the query from a raw package identifier.
func NewGetParcelQuery(parcelID string) (GetParcelQuery, error) {
	id, err := kernel.UUIDFromString(parcelID)
	if err != nil {
		return GetParcelQuery{}, errs.NewValueIsInvalidErrorWithCause("packageID", err)
	}

	return GetParcelQuery{
		parcelID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelQueryIsNotConstructed if validation fails.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the identifier of the package being looked up.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetParcelQueryResponse is the read model for one package.
// Tracking is nil until the package leaves the central facility.
type GetParcelQueryResponse struct {
	Details  ParcelDetailsResponse
	History  []HistoryEntryResponse
	Tracking *TrackingResponse
}

// ParcelDetailsResponse carries the registration facts of a package.
type ParcelDetailsResponse struct {
	ID                   kernel.UUID
	ReceiverAddress      string
	ReceiverName         string
	ReceiverEmail        string
	SenderAddress        string
	SenderName           string
	WeightKg             float64
	Registered           time.Time
	ExpectedDeliveryDate time.Time
}

// HistoryEntryResponse is one line of the package's status history.
// Status carries the wire label, for example "PACKAGE_REGISTERED".
type HistoryEntryResponse struct {
	Status    string
	Message   string
	EntryDate time.Time
}

// TrackingResponse carries the live trip information of a package in route.
type TrackingResponse struct {
	DriverID             kernel.UUID
	ExpectedDeliveryTime time.Time
}
