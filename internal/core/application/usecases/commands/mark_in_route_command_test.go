package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkInRouteCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	driver := kernel.NewUUID()
	cmd, err := commands.NewMarkInRouteCommand([]string{id.String()}, driver.String())
	require.NoError(t, err)
	require.Len(t, cmd.ParcelIDs(), 1)
	assert.True(t, cmd.ParcelIDs()[0].IsEqual(id))
	assert.True(t, cmd.DriverID().IsEqual(driver))
	assert.NoError(t, cmd.Validate())
}

func TestNewMarkInRouteCommand_MalformedDriverID(t *testing.T) {
	_, err := commands.NewMarkInRouteCommand([]string{kernel.NewUUID().String()}, "driver-42")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewMarkInRouteCommand_EmptyBatch(t *testing.T) {
	_, err := commands.NewMarkInRouteCommand(nil, kernel.NewUUID().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewMarkInRouteCommand_MalformedParcelID(t *testing.T) {
	_, err := commands.NewMarkInRouteCommand([]string{"not-a-uuid"}, kernel.NewUUID().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMarkInRouteCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.MarkInRouteCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMarkInRouteCommandIsNotConstructed)
}
