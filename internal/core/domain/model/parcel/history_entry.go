package parcel

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not created
	// through the NewHistoryEntry factory method.
	ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry")
)

// Fixed status messages written to the history log and pushed to the recipient
// on the corresponding lifecycle transitions. The registration message is not
// fixed; it is composed per parcel, see Parcel.RegisteredMessage.
const (
	AtCentralMessage = "We have received your package and are processing it"
	InRouteMessage   = "Your package is in route. Check the link for real time tracking"
	DeliveredMessage = "Your package has been delivered"
)

// HistoryEntry is one record of a package's append-only status history.
// Entries are never mutated or deleted; the most recent entry by timestamp
// is authoritative for the package's current state.
type HistoryEntry struct {
	parcelID  kernel.UUID
	status    Status
	message   string
	entryDate time.Time

	isConstructed bool
}

// NewHistoryEntry creates a history entry for a lifecycle transition.
// The entry date is the server-assigned timestamp of the transition.
func NewHistoryEntry(parcelID kernel.UUID, status Status, message string, entryDate time.Time) (*HistoryEntry, error) {
	e := &HistoryEntry{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setParcelID(parcelID),
		e.setStatus(status),
		e.setMessage(message),
		e.setEntryDate(entryDate),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the entry was created via NewHistoryEntry.
func (e *HistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ParcelID returns the identifier of the package this entry belongs to.
func (e *HistoryEntry) ParcelID() kernel.UUID {
	return e.parcelID
}

// Status returns the lifecycle status recorded by this entry.
func (e *HistoryEntry) Status() Status {
	return e.status
}

// Message returns the human-readable message recorded with the transition.
func (e *HistoryEntry) Message() string {
	return e.message
}

// EntryDate returns the server-assigned timestamp of the transition.
func (e *HistoryEntry) EntryDate() time.Time {
	return e.entryDate
}

func (e *HistoryEntry) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	e.parcelID = parcelID
	return nil
}

func (e *HistoryEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *HistoryEntry) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	e.message = message
	return nil
}

func (e *HistoryEntry) setEntryDate(entryDate time.Time) error {
	if entryDate.IsZero() {
		return errs.NewValueIsRequiredError("entryDate")
	}
	e.entryDate = entryDate
	return nil
}
