package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/ports"
)

// MarkAtCentralCommandHandler records the PACKAGE_AT_CENTRAL transition for a
// batch of packages and notifies each recipient.
//
// Items are processed independently, each in its own transaction: a failing
// item does not undo items that already committed, and the remaining items
// are still attempted. The per-item outcomes report exactly which packages
// advanced.
type MarkAtCentralCommandHandler struct {
	uowFactory ParcelUoWFactory
	emailCache ports.RecipientEmailCache
	dispatcher ports.NotificationDispatcher
}

// NewMarkAtCentralCommandHandler creates a handler for the at-central transition.
func NewMarkAtCentralCommandHandler(
	uowFactory ParcelUoWFactory,
	emailCache ports.RecipientEmailCache,
	dispatcher ports.NotificationDispatcher,
) MarkAtCentralCommandHandler {
	return MarkAtCentralCommandHandler{
		uowFactory: uowFactory,
		emailCache: emailCache,
		dispatcher: dispatcher,
	}
}

// Handle processes the batch. The returned error is the first item failure,
// if any; the BatchResult always carries the complete per-item picture.
func (h *MarkAtCentralCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAtCentralCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	outcomes := make([]ItemOutcome, 0, len(cmd.ParcelIDs()))
	for _, id := range cmd.ParcelIDs() {
		outcomes = append(outcomes, ItemOutcome{
			ParcelID: id.String(),
			Err:      h.processParcel(ctx, id),
		})
	}

	result := BatchResult{Outcomes: outcomes}
	return result, result.Err()
}

func (h *MarkAtCentralCommandHandler) processParcel(ctx context.Context, id kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	// Resolving the email before the append doubles as the existence check:
	// no history entry is ever written for an unregistered package.
	email, ok := h.emailCache.Get(ctx, id)
	if !ok {
		var err error
		email, err = repo.FindRecipientEmail(ctx, id)
		if err != nil {
			return err
		}
		h.emailCache.Set(ctx, id, email)
	}

	entry, err := parcel.NewHistoryEntry(id, parcel.AtCentral, parcel.AtCentralMessage, time.Now())
	if err != nil {
		return err
	}

	if err = repo.AppendHistory(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, ports.Notification{
		PackageID:     id.String(),
		UpdateMessage: entry.Message(),
		UpdateDate:    entry.EntryDate(),
		ReceiverEmail: email,
	})

	return nil
}
