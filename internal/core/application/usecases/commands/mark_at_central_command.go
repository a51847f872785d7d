package commands

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrMarkAtCentralCommandIsNotConstructed = errors.New(
		"MarkAtCentralCommand must be created via NewMarkAtCentralCommand constructor",
	)
)

// parseParcelIDs validates and parses a batch of package identifiers.
// Every identifier is validated up front: a single malformed ID rejects the
// whole batch before any write can happen, so a partially valid request never
// leaves a partial trail in the history log.
func parseParcelIDs(parcelIDs []string) ([]kernel.UUID, error) {
	if len(parcelIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("packageIDs")
	}

	ids := make([]kernel.UUID, 0, len(parcelIDs))
	for _, raw := range parcelIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("packageID %q", raw), err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// MarkAtCentralCommand represents a batch request to record that packages
// arrived at the central facility.
type MarkAtCentralCommand struct { //nolint:recvcheck //using for validation
	parcelIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAtCentralCommand creates the command from raw package identifiers.
// The batch must be non-empty and every identifier must be a well-formed UUID.
func NewMarkAtCentralCommand(parcelIDs []string) (MarkAtCentralCommand, error) {
	ids, err := parseParcelIDs(parcelIDs)
	if err != nil {
		return MarkAtCentralCommand{}, err
	}

	return MarkAtCentralCommand{
		parcelIDs: ids,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAtCentralCommand) Validate() error {
	return c.guard.Validate(ErrMarkAtCentralCommandIsNotConstructed)
}

// ParcelIDs returns the validated package identifiers in request order.
func (c MarkAtCentralCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}
