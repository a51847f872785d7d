package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/ports"
)

// RegisterParcelResult is returned to the caller after a successful registration.
// The composed message is the same text written to the history log and pushed
// to the recipient.
type RegisterParcelResult struct {
	ParcelID kernel.UUID
	Message  string
}

// RegisterParcelCommandHandler handles package registration.
// Generates the package identifier, writes the details row together with the
// initial PACKAGE_REGISTERED history entry in one transaction, and notifies
// the recipient. Registration fails as a whole if either write fails.
type RegisterParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewRegisterParcelCommandHandler creates a handler for package registration.
func NewRegisterParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	dispatcher ports.NotificationDispatcher,
) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the registration command.
// Returns the generated package identifier and the composed status message.
func (h *RegisterParcelCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterParcelCommand,
) (RegisterParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterParcelResult{}, err
	}

	registered := time.Now()
	aggregate, err := parcel.NewParcel(
		kernel.NewUUID(),
		cmd.ReceiverAddress(), cmd.ReceiverName(), cmd.ReceiverEmail(),
		cmd.SenderAddress(), cmd.SenderName(),
		cmd.WeightKg(),
		registered,
	)
	if err != nil {
		return RegisterParcelResult{}, err
	}

	entry, err := parcel.NewHistoryEntry(
		aggregate.ID(), parcel.Registered, aggregate.RegisteredMessage(), registered)
	if err != nil {
		return RegisterParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RegisterParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()
	if err = repo.InsertDetails(ctx, aggregate); err != nil {
		return RegisterParcelResult{}, err
	}

	if err = repo.AppendHistory(ctx, entry); err != nil {
		return RegisterParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterParcelResult{}, err
	}

	h.dispatcher.Dispatch(ctx, ports.Notification{
		PackageID:     aggregate.ID().String(),
		UpdateMessage: entry.Message(),
		UpdateDate:    entry.EntryDate(),
		ReceiverEmail: aggregate.ReceiverEmail(),
	})

	return RegisterParcelResult{
		ParcelID: aggregate.ID(),
		Message:  entry.Message(),
	}, nil
}
