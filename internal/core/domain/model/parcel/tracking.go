package parcel

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrTrackingIsNotConstructed is returned when a Tracking instance was not created
	// through the NewTracking factory method.
	ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking")
)

// inRouteLeadTime is how far ahead the delivery estimate is set when a package
// leaves the central facility.
const inRouteLeadTime = 8 * time.Hour

// Tracking is the in-transit record of a package: which driver carries it and
// when it is expected to arrive. At most one live tracking record exists per
// package; recording a new in-route transition overwrites the previous one.
// Its absence means the package has not yet left the central facility.
type Tracking struct {
	parcelID             kernel.UUID
	driverID             kernel.UUID
	expectedDeliveryTime time.Time

	// guard ensures the record was properly initialized
	guard kernel.ConstructorGuard
}

// NewTracking creates a tracking record binding a parcel to a driver with a
// delivery estimate.
func NewTracking(parcelID, driverID kernel.UUID, expectedDeliveryTime time.Time) (*Tracking, error) {
	t := &Tracking{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setParcelID(parcelID),
		t.setDriverID(driverID),
		t.setExpectedDeliveryTime(expectedDeliveryTime),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// InRouteDeliveryTime returns the delivery estimate for a package entering
// transit at the given time: eight hours from that moment.
func InRouteDeliveryTime(now time.Time) time.Time {
	return now.Add(inRouteLeadTime)
}

// Validate ensures the tracking record was created via NewTracking.
func (t *Tracking) Validate() error {
	if t == nil {
		return ErrTrackingIsNotConstructed
	}
	return t.guard.Validate(ErrTrackingIsNotConstructed)
}

// ParcelID returns the identifier of the tracked package.
func (t *Tracking) ParcelID() kernel.UUID {
	return t.parcelID
}

// DriverID returns the identifier of the driver carrying the package.
func (t *Tracking) DriverID() kernel.UUID {
	return t.driverID
}

// ExpectedDeliveryTime returns when the package is expected to arrive.
func (t *Tracking) ExpectedDeliveryTime() time.Time {
	return t.expectedDeliveryTime
}

func (t *Tracking) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	t.parcelID = parcelID
	return nil
}

func (t *Tracking) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	t.driverID = driverID
	return nil
}

func (t *Tracking) setExpectedDeliveryTime(expectedDeliveryTime time.Time) error {
	if expectedDeliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryTime")
	}
	t.expectedDeliveryTime = expectedDeliveryTime
	return nil
}
