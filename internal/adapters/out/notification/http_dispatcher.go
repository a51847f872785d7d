// Package notification pushes status update notifications to the external
// notification service over HTTP.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"tracking/internal/core/ports"
)

const dispatchTimeout = 10 * time.Second

// notificationBody is the wire format the notification service accepts.
type notificationBody struct {
	PackageID     string    `json:"packageID"`
	UpdateMessage string    `json:"updateMessage"`
	UpdateDate    time.Time `json:"updateDate"`
	ReceiverEmail string    `json:"receiverEmail"`
}

// HTTPDispatcher delivers notifications to the notification service with
// fire and forget semantics: delivery failures are logged and swallowed, a
// package transition never fails because the notification service is down.
type HTTPDispatcher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewHTTPDispatcher creates a dispatcher posting to the given endpoint.
func NewHTTPDispatcher(endpoint string, logger *slog.Logger) *HTTPDispatcher {
	return &HTTPDispatcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: dispatchTimeout},
		logger:   logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch posts one notification without blocking the caller. The send runs
// in its own goroutine on a context detached from the request, so a slow
// notification service never stretches the enclosing request and an already
// answered request does not cancel the send. Never reports an error; failures
// are logged with enough context to replay the notification by hand.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, n ports.Notification) {
	go d.send(context.WithoutCancel(ctx), n)
}

func (d *HTTPDispatcher) send(ctx context.Context, n ports.Notification) {
	body, err := json.Marshal(notificationBody{
		PackageID:     n.PackageID,
		UpdateMessage: n.UpdateMessage,
		UpdateDate:    n.UpdateDate,
		ReceiverEmail: n.ReceiverEmail,
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to encode notification",
			"packageID", n.PackageID, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to build notification request",
			"packageID", n.PackageID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to deliver notification",
			"packageID", n.PackageID, "receiverEmail", n.ReceiverEmail, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		d.logger.ErrorContext(ctx, "Notification service rejected notification",
			"packageID", n.PackageID, "status", resp.StatusCode)
		return
	}

	d.logger.DebugContext(ctx, "Notification delivered",
		"packageID", n.PackageID, "receiverEmail", n.ReceiverEmail)
}
