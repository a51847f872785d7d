package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/ports"
)

// MarkInRouteCommandHandler records the PACKAGE_IN_ROUTE transition for a
// batch of packages: appends the history entry, upserts the tracking record
// with a fresh eight-hour delivery estimate, and notifies each recipient.
//
// The history append and the tracking upsert for one package share a
// transaction; different packages commit independently.
type MarkInRouteCommandHandler struct {
	uowFactory ParcelUoWFactory
	emailCache ports.RecipientEmailCache
	dispatcher ports.NotificationDispatcher
}

// NewMarkInRouteCommandHandler creates a handler for the in-route transition.
func NewMarkInRouteCommandHandler(
	uowFactory ParcelUoWFactory,
	emailCache ports.RecipientEmailCache,
	dispatcher ports.NotificationDispatcher,
) MarkInRouteCommandHandler {
	return MarkInRouteCommandHandler{
		uowFactory: uowFactory,
		emailCache: emailCache,
		dispatcher: dispatcher,
	}
}

// Handle processes the batch. The returned error is the first item failure,
// if any; the BatchResult always carries the complete per-item picture.
func (h *MarkInRouteCommandHandler) Handle(
	ctx context.Context,
	cmd MarkInRouteCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	outcomes := make([]ItemOutcome, 0, len(cmd.ParcelIDs()))
	for _, id := range cmd.ParcelIDs() {
		outcomes = append(outcomes, ItemOutcome{
			ParcelID: id.String(),
			Err:      h.processParcel(ctx, id, cmd.DriverID()),
		})
	}

	result := BatchResult{Outcomes: outcomes}
	return result, result.Err()
}

func (h *MarkInRouteCommandHandler) processParcel(
	ctx context.Context,
	id kernel.UUID,
	driverID kernel.UUID,
) error {
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

	now := time.Now()
	entry, err := parcel.NewHistoryEntry(id, parcel.InRoute, parcel.InRouteMessage, now)
	if err != nil {
		return err
	}

	tracking, err := parcel.NewTracking(id, driverID, parcel.InRouteDeliveryTime(now))
	if err != nil {
		return err
	}

	if err = repo.AppendHistory(ctx, entry); err != nil {
		return err
	}

	if err = repo.UpsertTracking(ctx, tracking); err != nil {
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
