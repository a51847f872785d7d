package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a
// nil error is passed as the validation error, so that validation always
// fails with a meaningful message for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain entities are only created through their
// designated constructor functions. By embedding a ConstructorGuard in a
// struct, you can detect whether the struct was properly initialized through
// its constructor or created as a zero value.
//
// The guard keeps an internal flag that is only set when the object is
// created through NewConstructorGuard. A zero-value struct fails validation.
//
// Example usage:
//
//	var ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking")
//
//	type Tracking struct {
//	    parcelID kernel.UUID
//	    driverID kernel.UUID
//	    guard    kernel.ConstructorGuard
//	}
//
//	func NewTracking(parcelID, driverID kernel.UUID) (*Tracking, error) {
//	    if err := driverID.Validate(); err != nil {
//	        return nil, err
//	    }
//	    return &Tracking{
//	        parcelID: parcelID,
//	        driverID: driverID,
//	        guard:    kernel.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (t *Tracking) Validate() error {
//	    return t.guard.Validate(ErrTrackingIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects so they
// can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
