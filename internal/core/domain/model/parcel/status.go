package parcel

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents a lifecycle state of a tracked package.
//
// Lifecycle of a package:
//
//	Registered ──> AtCentral ──> InRoute ──> Delivered
//
// Each transition is driven by an external call; there is no background
// scheduler advancing packages. Status values are persisted as integers in
// the history log, so their numeric order must never be changed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Registered is the initial status written when a package is registered.
	Registered

	// AtCentral indicates the package arrived at the central facility.
	AtCentral

	// InRoute indicates the package left the central facility with a driver.
	// Entering this status creates or refreshes the tracking record.
	InRoute

	// Delivered indicates the package reached the recipient.
	Delivered
)

// getStatusStrings returns a map of Status values to their history labels.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Registered: "PACKAGE_REGISTERED",
		AtCentral:  "PACKAGE_AT_CENTRAL",
		InRoute:    "PACKAGE_IN_ROUTE",
		Delivered:  "PACKAGE_DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Registered: "PACKAGE_REGISTERED",
		AtCentral:  "PACKAGE_AT_CENTRAL",
		InRoute:    "PACKAGE_IN_ROUTE",
		Delivered:  "PACKAGE_DELIVERED",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Registered, AtCentral, InRoute, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the history label of the status, e.g. "PACKAGE_IN_ROUTE".
// These labels are what clients see in a package's history entries.
// Returns "UNKNOWN" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
