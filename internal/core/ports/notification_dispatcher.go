package ports

import (
	"context"
	"time"
)

// Notification is the payload pushed to the recipient on a status change.
type Notification struct {
	PackageID     string
	UpdateMessage string
	UpdateDate    time.Time
	ReceiverEmail string
}

// NotificationDispatcher pushes a status message to the recipient.
//
// Dispatch is best-effort and fire-and-forget: implementations log failures
// and never return them, so a broken notification channel can never fail the
// enclosing lifecycle operation. Exactly-once delivery is not provided.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification Notification)
}
