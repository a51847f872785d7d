package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
)

// MarkDeliveredCommand represents a batch request to record that packages
// reached their recipients.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	parcelIDs []kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates the command from raw identifiers.
// Validation follows the in-route shape: the driver identifier is checked
// first and a malformed driverID rejects the whole call before any package
// identifier is even looked at. The driver is not persisted on delivery, the
// tracking record already names who carried the package.
func NewMarkDeliveredCommand(parcelIDs []string, driverID string) (MarkDeliveredCommand, error) {
	driver, err := kernel.UUIDFromString(driverID)
	if err != nil {
		return MarkDeliveredCommand{}, errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}

	ids, err := parseParcelIDs(parcelIDs)
	if err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		parcelIDs: ids,
		driverID:  driver,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// ParcelIDs returns the validated package identifiers in request order.
func (c MarkDeliveredCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}

// DriverID returns the identifier of the driver closing out the deliveries.
func (c MarkDeliveredCommand) DriverID() kernel.UUID {
	return c.driverID
}
