// Package http exposes the package lifecycle API over HTTP.
// The Server implements the generated ServerInterface and translates between
// wire types and application commands and queries.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerHandler  commands.RegisterParcelCommandHandler
	atCentralHandler commands.MarkAtCentralCommandHandler
	inRouteHandler   commands.MarkInRouteCommandHandler
	deliveredHandler commands.MarkDeliveredCommandHandler

	// Query handlers
	getParcelHandler queries.GetParcelQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerHandler commands.RegisterParcelCommandHandler,
	atCentralHandler commands.MarkAtCentralCommandHandler,
	inRouteHandler commands.MarkInRouteCommandHandler,
	deliveredHandler commands.MarkDeliveredCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerHandler:  registerHandler,
		atCentralHandler: atCentralHandler,
		inRouteHandler:   inRouteHandler,
		deliveredHandler: deliveredHandler,
		getParcelHandler: getParcelHandler,
		logger:           logger.With("component", "http_server"),
	}
}

// RegisterPackage handles POST /register - registers a new package.
func (s *Server) RegisterPackage(ctx echo.Context) error {
	var newPackage servers.NewPackage
	if err := ctx.Bind(&newPackage); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRegisterParcelCommand(
		newPackage.ReceiverAddress, newPackage.ReceiverName, newPackage.ReceiverEmail,
		newPackage.SenderAddress, newPackage.SenderName,
		newPackage.WeightKg,
	)
	if err != nil {
		return s.errorResponse(ctx, "register", err)
	}

	result, err := s.registerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, "register", err)
	}

	return ctx.JSON(http.StatusCreated, servers.PackageRegistered{
		PackageID: result.ParcelID.String(),
	})
}

// MarkCentralDelivery handles POST /central-delivery - records arrival at the
// central facility for a batch of packages.
func (s *Server) MarkCentralDelivery(ctx echo.Context) error {
	var request servers.CentralDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewMarkAtCentralCommand(request.PackageIDs)
	if err != nil {
		return s.errorResponse(ctx, "central-delivery", err)
	}

	result, err := s.atCentralHandler.Handle(ctx.Request().Context(), cmd)
	if storeErr := storeFailure(result, err); storeErr != nil {
		return s.errorResponse(ctx, "central-delivery", storeErr)
	}
	return s.batchResponse(ctx, "central-delivery", result)
}

// MarkInRoute handles POST /in-route - records driver pickup for a batch of packages.
func (s *Server) MarkInRoute(ctx echo.Context) error {
	var request servers.InRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewMarkInRouteCommand(request.PackageIDs, request.DriverID)
	if err != nil {
		return s.errorResponse(ctx, "in-route", err)
	}

	result, err := s.inRouteHandler.Handle(ctx.Request().Context(), cmd)
	if storeErr := storeFailure(result, err); storeErr != nil {
		return s.errorResponse(ctx, "in-route", storeErr)
	}
	return s.batchResponse(ctx, "in-route", result)
}

// MarkDelivered handles POST /delivered - records final delivery for a batch
// of packages.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	var request servers.DeliveredRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewMarkDeliveredCommand(request.PackageIDs, request.DriverID)
	if err != nil {
		return s.errorResponse(ctx, "delivered", err)
	}

	result, err := s.deliveredHandler.Handle(ctx.Request().Context(), cmd)
	if storeErr := storeFailure(result, err); storeErr != nil {
		return s.errorResponse(ctx, "delivered", storeErr)
	}
	return s.batchResponse(ctx, "delivered", result)
}

// GetPackage handles GET /package - returns details, history and tracking for
// one package.
func (s *Server) GetPackage(ctx echo.Context, params servers.GetPackageParams) error {
	// Cheap syntactic gate before touching the database
	if !kernel.IsValidUUID(params.PackageID) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "packageID is not a valid UUID",
		})
	}

	query, err := queries.NewGetParcelQuery(params.PackageID)
	if err != nil {
		return s.errorResponse(ctx, "get-package", err)
	}

	result, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, "get-package", err)
	}

	return ctx.JSON(http.StatusOK, toPackageView(result))
}

// storeFailure returns the first store-level item error in the batch, or nil.
// Unknown packages are per-item outcomes; anything else failing mid-batch
// means the backing store misbehaved and the whole call is reported as a
// server error, even though items that already committed stay committed.
func storeFailure(result commands.BatchResult, err error) error {
	if err == nil {
		return nil
	}
	for _, outcome := range result.Outcomes {
		if outcome.Err != nil && !errors.Is(outcome.Err, errs.ErrObjectNotFound) {
			return outcome.Err
		}
	}
	return nil
}

// batchResponse reports per-item outcomes. The batch itself was accepted, so
// individual failures come back inside the body rather than as a status code.
func (s *Server) batchResponse(ctx echo.Context, op string, result commands.BatchResult) error {
	outcomes := make([]servers.BatchOutcome, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		item := servers.BatchOutcome{
			PackageID: outcome.ParcelID,
			Success:   outcome.Err == nil,
		}
		if outcome.Err != nil {
			message := outcome.Err.Error()
			item.Error = &message
			s.logger.Warn("Batch item failed",
				"op", op, "packageID", outcome.ParcelID, "error", outcome.Err)
		}
		outcomes = append(outcomes, item)
	}

	return ctx.JSON(http.StatusOK, outcomes)
}

// errorResponse maps application errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		s.logger.Error("Request failed", "op", op, "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// toPackageView maps the query read model onto the wire format.
func toPackageView(result queries.GetParcelQueryResponse) servers.PackageView {
	view := servers.PackageView{
		PackageID:            result.Details.ID.String(),
		ReceiverAddress:      result.Details.ReceiverAddress,
		ReceiverName:         result.Details.ReceiverName,
		ReceiverEmail:        result.Details.ReceiverEmail,
		SenderAddress:        result.Details.SenderAddress,
		SenderName:           result.Details.SenderName,
		WeightKg:             result.Details.WeightKg,
		Registered:           result.Details.Registered,
		ExpectedDeliveryDate: result.Details.ExpectedDeliveryDate,
		HistoryEntries:       make([]servers.HistoryEntry, 0, len(result.History)),
	}

	for _, entry := range result.History {
		view.HistoryEntries = append(view.HistoryEntries, servers.HistoryEntry{
			Status:    entry.Status,
			Message:   entry.Message,
			EntryDate: entry.EntryDate,
		})
	}

	if result.Tracking != nil {
		view.TrackingDetails = &servers.TrackingDetails{
			DriverID:             result.Tracking.DriverID.String(),
			ExpectedDeliveryTime: result.Tracking.ExpectedDeliveryTime,
		}
	}

	return view
}
