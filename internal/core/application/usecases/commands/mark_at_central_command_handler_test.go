package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkAtCentralCommandHandler_Handle_Success_CacheHit(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewMarkAtCentralCommand([]string{id.String()})
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("AppendHistory", mock.Anything, mock.AnythingOfType("*parcel.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockEmailCache)
	cache.On("Get", ctx, id).Return("homer@example.com", true).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.PackageID == id.String() && n.ReceiverEmail == "homer@example.com"
	})).Once()

	h := commands.NewMarkAtCentralCommandHandler(factory, cache, dispatcher)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	assert.NoError(t, result.Outcomes[0].Err)
	assert.False(t, result.Failed())
	repo.AssertNotCalled(t, "FindRecipientEmail", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestMarkAtCentralCommandHandler_Handle_CacheMissFillsCache(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewMarkAtCentralCommand([]string{id.String()})
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("FindRecipientEmail", mock.Anything, id).Return("homer@example.com", nil).Once()
	repo.On("AppendHistory", mock.Anything, mock.AnythingOfType("*parcel.HistoryEntry")).Return(nil).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockEmailCache)
	cache.On("Get", ctx, id).Return("", false).Once()
	cache.On("Set", ctx, id, "homer@example.com").Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", ctx, mock.Anything).Once()

	h := commands.NewMarkAtCentralCommandHandler(factory, cache, dispatcher)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.Failed())
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestMarkAtCentralCommandHandler_Handle_UnknownPackage(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewMarkAtCentralCommand([]string{id.String()})
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("parcelID", id)

	repo := new(MockParcelRepository)
	repo.On("FindRecipientEmail", mock.Anything, id).Return("", notFound).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockEmailCache)
	cache.On("Get", ctx, id).Return("", false).Once()

	dispatcher := new(MockDispatcher)

	h := commands.NewMarkAtCentralCommandHandler(factory, cache, dispatcher)
	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.True(t, result.Failed())
	repo.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestMarkAtCentralCommandHandler_Handle_PartialBatch(t *testing.T) {
	ctx := t.Context()
	good := kernel.NewUUID()
	missing := kernel.NewUUID()
	cmd, err := commands.NewMarkAtCentralCommand([]string{missing.String(), good.String()})
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("parcelID", missing)

	repo := new(MockParcelRepository)
	repo.On("FindRecipientEmail", mock.Anything, missing).Return("", notFound).Once()
	repo.On("FindRecipientEmail", mock.Anything, good).Return("homer@example.com", nil).Once()
	repo.On("AppendHistory", mock.Anything, mock.AnythingOfType("*parcel.HistoryEntry")).Return(nil).Once()

	uow := new(MockParcelUoW)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("ParcelRepository").Return(repo).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	cache := new(MockEmailCache)
	cache.On("Get", ctx, mock.Anything).Return("", false).Times(2)
	cache.On("Set", ctx, good, "homer@example.com").Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.PackageID == good.String()
	})).Once()

	h := commands.NewMarkAtCentralCommandHandler(factory, cache, dispatcher)
	result, err := h.Handle(ctx, cmd)

	// The failing item surfaces as the call error, the good item still commits.
	require.Error(t, err)
	require.Len(t, result.Outcomes, 2)
	assert.Error(t, result.Outcomes[0].Err)
	assert.NoError(t, result.Outcomes[1].Err)
	repo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestMarkAtCentralCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkAtCentralCommand{} // not constructed properly
	factory := new(MockParcelUoWFactory)
	h := commands.NewMarkAtCentralCommandHandler(factory, new(MockEmailCache), new(MockDispatcher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
