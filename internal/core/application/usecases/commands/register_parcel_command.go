package commands

import (
	"errors"
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrRegisterParcelCommandIsNotConstructed = errors.New(
		"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
	)
)

// RegisterParcelCommand represents a request to register a new package for tracking.
// Carries the registration facts supplied by the sender's shop: who receives the
// package, who ships it, and how much it weighs.
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	receiverAddress string
	receiverName    string
	receiverEmail   string
	senderAddress   string
	senderName      string
	weightKg        float64

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a registration command.
// All string fields are required and the weight must be positive.
func NewRegisterParcelCommand(
	receiverAddress, receiverName, receiverEmail string,
	senderAddress, senderName string,
	weightKg float64,
) (RegisterParcelCommand, error) {
	cmd := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequired("receiverAddress", receiverAddress, &cmd.receiverAddress),
		cmd.setRequired("receiverName", receiverName, &cmd.receiverName),
		cmd.setRequired("receiverEmail", receiverEmail, &cmd.receiverEmail),
		cmd.setRequired("senderAddress", senderAddress, &cmd.senderAddress),
		cmd.setRequired("senderName", senderName, &cmd.senderName),
		cmd.setWeightKg(weightKg),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterParcelCommandIsNotConstructed if validation fails.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ReceiverAddress returns the delivery address of the recipient.
func (c RegisterParcelCommand) ReceiverAddress() string {
	return c.receiverAddress
}

// ReceiverName returns the name of the recipient.
func (c RegisterParcelCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverEmail returns the email address notifications are sent to.
func (c RegisterParcelCommand) ReceiverEmail() string {
	return c.receiverEmail
}

// SenderAddress returns the address the package ships from.
func (c RegisterParcelCommand) SenderAddress() string {
	return c.senderAddress
}

// SenderName returns the name of the shop or person shipping the package.
func (c RegisterParcelCommand) SenderName() string {
	return c.senderName
}

// WeightKg returns the package weight in kilograms.
func (c RegisterParcelCommand) WeightKg() float64 {
	return c.weightKg
}

func (c *RegisterParcelCommand) setRequired(name, value string, target *string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*target = value
	return nil
}

func (c *RegisterParcelCommand) setWeightKg(weightKg float64) error {
	// Negated comparison also rejects NaN, which fails every ordering check
	if !(weightKg > 0) {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	c.weightKg = weightKg
	return nil
}
