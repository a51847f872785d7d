package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetOverdueParcelsQueryIsNotConstructed = errors.New(
		"GetOverdueParcelsQuery must be created via NewGetOverdueParcelsQuery constructor",
	)
)

// GetOverdueParcelsQuery retrieves packages still in route past their
// expected delivery time. Used by the overdue delivery monitor; the query
// only reads, it never advances a package.
type GetOverdueParcelsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueParcelsQuery creates the query for a given reference time.
func NewGetOverdueParcelsQuery(asOf time.Time) (GetOverdueParcelsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueParcelsQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOverdueParcelsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueParcelsQueryIsNotConstructed)
}

// AsOf returns the reference time packages are measured against.
func (q GetOverdueParcelsQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueParcelsQueryResponse describes one overdue package.
type GetOverdueParcelsQueryResponse struct {
	ParcelID             kernel.UUID
	DriverID             kernel.UUID
	ExpectedDeliveryTime time.Time
}
