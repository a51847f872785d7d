package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/ports"
)

// MarkDeliveredCommandHandler records the PACKAGE_DELIVERED transition for a
// batch of packages and notifies each recipient. The tracking record is left
// untouched so the final leg of the trip stays auditable.
type MarkDeliveredCommandHandler struct {
	uowFactory ParcelUoWFactory
	emailCache ports.RecipientEmailCache
	dispatcher ports.NotificationDispatcher
}

// NewMarkDeliveredCommandHandler creates a handler for the delivered transition.
func NewMarkDeliveredCommandHandler(
	uowFactory ParcelUoWFactory,
	emailCache ports.RecipientEmailCache,
	dispatcher ports.NotificationDispatcher,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		emailCache: emailCache,
		dispatcher: dispatcher,
	}
}

// Handle processes the batch. The returned error is the first item failure,
// if any; the BatchResult always carries the complete per-item picture.
func (h *MarkDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkDeliveredCommand,
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

func (h *MarkDeliveredCommandHandler) processParcel(ctx context.Context, id kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	email, ok := h.emailCache.Get(ctx, id)
	if !ok {
		var err error
		email, err = repo.FindRecipientEmail(ctx, id)
		if err != nil {
			return err
		}
		h.emailCache.Set(ctx, id, email)
	}

	entry, err := parcel.NewHistoryEntry(id, parcel.Delivered, parcel.DeliveredMessage, time.Now())
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
