package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created through
	// the NewParcel or RestoreParcel factory methods.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// registeredMessageDateLayout renders the promised delivery date inside the
// registration message, e.g. "Tue Sep 01 2026".
const registeredMessageDateLayout = "Mon Jan 02 2006"

// Parcel represents the registration facts of a tracked package.
// It is created once at registration and immutable afterwards; all lifecycle
// state lives in the append-only history log, not on the parcel itself.
//
// Parcel maintains these invariants:
//   - Must have a valid unique identifier
//   - Receiver address, name, email and sender address, name must be non-empty
//   - Weight must be positive
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	id kernel.UUID

	receiverAddress string
	receiverName    string
	receiverEmail   string
	senderAddress   string
	senderName      string

	// weightKg is the package weight in kilograms (must be positive)
	weightKg float64

	// registered is the server-assigned registration timestamp
	registered time.Time

	// expectedDeliveryDate is the promised delivery date, fixed at registration
	expectedDeliveryDate time.Time

	// isConstructed ensures the parcel was created via a factory method
	isConstructed bool
}

// NewParcel creates a Parcel for a fresh registration. The expected delivery
// date is computed from the registration time: the next calendar day at 12:30
// local time, regardless of when during the day the package was registered.
// This is a deliberate simplification standing in for a real ETA calculation.
//
// Returns a validation error if any field is missing or the weight is not positive.
func NewParcel(
	id kernel.UUID,
	receiverAddress, receiverName, receiverEmail string,
	senderAddress, senderName string,
	weightKg float64,
	registered time.Time,
) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setReceiverAddress(receiverAddress),
		p.setReceiverName(receiverName),
		p.setReceiverEmail(receiverEmail),
		p.setSenderAddress(senderAddress),
		p.setSenderName(senderName),
		p.setWeightKg(weightKg),
		p.setRegistered(registered),
	); err != nil {
		return nil, err
	}

	p.expectedDeliveryDate = ExpectedDeliveryDate(p.registered)
	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence, keeping the stored
// expected delivery date instead of recomputing it.
func RestoreParcel(
	id kernel.UUID,
	receiverAddress, receiverName, receiverEmail string,
	senderAddress, senderName string,
	weightKg float64,
	registered time.Time,
	expectedDeliveryDate time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, receiverAddress, receiverName, receiverEmail,
		senderAddress, senderName, weightKg, registered)
	if err != nil {
		return nil, err
	}

	p.expectedDeliveryDate = expectedDeliveryDate
	return p, nil
}

// ExpectedDeliveryDate returns the promised delivery date for a package
// registered at the given time: the next calendar day at 12:30 local time.
func ExpectedDeliveryDate(registered time.Time) time.Time {
	return time.Date(
		registered.Year(), registered.Month(), registered.Day()+1,
		12, 30, 0, 0,
		registered.Location(),
	)
}

// Validate ensures the Parcel instance was properly constructed through a factory method.
// Returns ErrParcelIsNotConstructed otherwise.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// ReceiverAddress returns the delivery address of the recipient.
func (p *Parcel) ReceiverAddress() string {
	return p.receiverAddress
}

// ReceiverName returns the name of the recipient.
func (p *Parcel) ReceiverName() string {
	return p.receiverName
}

// ReceiverEmail returns the email address notifications are sent to.
func (p *Parcel) ReceiverEmail() string {
	return p.receiverEmail
}

// SenderAddress returns the address the package was shipped from.
func (p *Parcel) SenderAddress() string {
	return p.senderAddress
}

// SenderName returns the name of the shop or person that shipped the package.
func (p *Parcel) SenderName() string {
	return p.senderName
}

// WeightKg returns the package weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Registered returns the server-assigned registration timestamp.
func (p *Parcel) Registered() time.Time {
	return p.registered
}

// ExpectedDeliveryDate returns the promised delivery date fixed at registration.
func (p *Parcel) ExpectedDeliveryDate() time.Time {
	return p.expectedDeliveryDate
}

// RegisteredMessage composes the human-readable message written to the
// history log and sent to the recipient when the package is registered.
func (p *Parcel) RegisteredMessage() string {
	return fmt.Sprintf(
		"We have been notified of your purchase at %s. We expect to deliver your package %s",
		p.senderName,
		p.expectedDeliveryDate.Format(registeredMessageDateLayout),
	)
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setReceiverAddress(receiverAddress string) error {
	if strings.TrimSpace(receiverAddress) == "" {
		return errs.NewValueIsRequiredError("receiverAddress")
	}
	p.receiverAddress = receiverAddress
	return nil
}

func (p *Parcel) setReceiverName(receiverName string) error {
	if strings.TrimSpace(receiverName) == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	p.receiverName = receiverName
	return nil
}

func (p *Parcel) setReceiverEmail(receiverEmail string) error {
	if strings.TrimSpace(receiverEmail) == "" {
		return errs.NewValueIsRequiredError("receiverEmail")
	}
	p.receiverEmail = receiverEmail
	return nil
}

func (p *Parcel) setSenderAddress(senderAddress string) error {
	if strings.TrimSpace(senderAddress) == "" {
		return errs.NewValueIsRequiredError("senderAddress")
	}
	p.senderAddress = senderAddress
	return nil
}

func (p *Parcel) setSenderName(senderName string) error {
	if strings.TrimSpace(senderName) == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	p.senderName = senderName
	return nil
}

func (p *Parcel) setWeightKg(weightKg float64) error {
	// Negated comparison also rejects NaN, which fails every ordering check
	if !(weightKg > 0) {
		return errs.NewValueIsInvalidErrorWithCause("weightKg is invalid",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setRegistered(registered time.Time) error {
	if registered.IsZero() {
		return errs.NewValueIsRequiredError("registered")
	}
	p.registered = registered
	return nil
}
