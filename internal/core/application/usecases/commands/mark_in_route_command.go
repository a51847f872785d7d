package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrMarkInRouteCommandIsNotConstructed = errors.New(
		"MarkInRouteCommand must be created via NewMarkInRouteCommand constructor",
	)
)

// MarkInRouteCommand represents a batch request to record that packages left
// the central facility with a driver. Recording this transition creates or
// refreshes each package's tracking record.
type MarkInRouteCommand struct { //nolint:recvcheck //using for validation
	parcelIDs []kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkInRouteCommand creates the command from raw identifiers.
// The driver identifier is validated first: a malformed driverID rejects the
// whole call before any package identifier is even looked at.
func NewMarkInRouteCommand(parcelIDs []string, driverID string) (MarkInRouteCommand, error) {
	driver, err := kernel.UUIDFromString(driverID)
	if err != nil {
		return MarkInRouteCommand{}, errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}

	ids, err := parseParcelIDs(parcelIDs)
	if err != nil {
		return MarkInRouteCommand{}, err
	}

	return MarkInRouteCommand{
		parcelIDs: ids,
		driverID:  driver,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInRouteCommand) Validate() error {
	return c.guard.Validate(ErrMarkInRouteCommandIsNotConstructed)
}

// ParcelIDs returns the validated package identifiers in request order.
func (c MarkInRouteCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}

// DriverID returns the identifier of the driver taking the packages.
func (c MarkInRouteCommand) DriverID() kernel.UUID {
	return c.driverID
}
