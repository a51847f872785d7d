package parcel_test

import (
	"math"
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParcel(t *testing.T, registered time.Time) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"1 Receiver St", "Jane Receiver", "jane@example.com",
		"2 Sender Ave", "Acme Books",
		2.5,
		registered,
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	registered := time.Date(2026, 8, 31, 17, 45, 0, 0, time.UTC)

	t.Run("should create parcel with all fields", func(t *testing.T) {
		p := validParcel(t, registered)

		assert.NoError(t, p.Validate())
		assert.Equal(t, "1 Receiver St", p.ReceiverAddress())
		assert.Equal(t, "Jane Receiver", p.ReceiverName())
		assert.Equal(t, "jane@example.com", p.ReceiverEmail())
		assert.Equal(t, "2 Sender Ave", p.SenderAddress())
		assert.Equal(t, "Acme Books", p.SenderName())
		assert.InDelta(t, 2.5, p.WeightKg(), 0.0001)
		assert.Equal(t, registered, p.Registered())
	})

	t.Run("should compute expected delivery date as next day at 12:30", func(t *testing.T) {
		p := validParcel(t, registered)

		expected := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
		assert.Equal(t, expected, p.ExpectedDeliveryDate())
	})

	t.Run("should roll over month boundaries", func(t *testing.T) {
		endOfMonth := time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC)
		p := validParcel(t, endOfMonth)

		expected := time.Date(2026, 2, 1, 12, 30, 0, 0, time.UTC)
		assert.Equal(t, expected, p.ExpectedDeliveryDate())
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		testCases := []struct {
			name  string
			build func() (*parcel.Parcel, error)
		}{
			{"empty receiver address", func() (*parcel.Parcel, error) {
				return parcel.NewParcel(kernel.NewUUID(), "", "Jane", "j@e.com", "2 Sender Ave", "Acme", 1, registered)
			}},
			{"empty receiver name", func() (*parcel.Parcel, error) {
				return parcel.NewParcel(kernel.NewUUID(), "1 St", "", "j@e.com", "2 Sender Ave", "Acme", 1, registered)
			}},
			{"empty receiver email", func() (*parcel.Parcel, error) {
				return parcel.NewParcel(kernel.NewUUID(), "1 St", "Jane", "", "2 Sender Ave", "Acme", 1, registered)
			}},
			{"empty sender address", func() (*parcel.Parcel, error) {
				return parcel.NewParcel(kernel.NewUUID(), "1 St", "Jane", "j@e.com", "", "Acme", 1, registered)
			}},
			{"empty sender name", func() (*parcel.Parcel, error) {
				return parcel.NewParcel(kernel.NewUUID(), "1 St", "Jane", "j@e.com", "2 Sender Ave", "", 1, registered)
			}},
			{"whitespace only field", func() (*parcel.Parcel, error) {
				return parcel.NewParcel(kernel.NewUUID(), "   ", "Jane", "j@e.com", "2 Sender Ave", "Acme", 1, registered)
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.build()
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		for _, weight := range []float64{0, -1, -2.5, math.NaN()} {
			_, err := parcel.NewParcel(kernel.NewUUID(),
				"1 St", "Jane", "j@e.com", "2 Sender Ave", "Acme", weight, registered)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject unconstructed ID", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := parcel.NewParcel(zeroID,
			"1 St", "Jane", "j@e.com", "2 Sender Ave", "Acme", 1, registered)
		require.Error(t, err)
	})

	t.Run("zero value parcel fails validation", func(t *testing.T) {
		var p parcel.Parcel
		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_RegisteredMessage(t *testing.T) {
	registered := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	p := validParcel(t, registered)

	msg := p.RegisteredMessage()

	assert.Equal(t,
		"We have been notified of your purchase at Acme Books. "+
			"We expect to deliver your package Tue Sep 01 2026",
		msg)
}

func TestRestoreParcel(t *testing.T) {
	t.Run("keeps the stored expected delivery date", func(t *testing.T) {
		registered := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
		stored := time.Date(2026, 9, 3, 12, 30, 0, 0, time.UTC)

		p, err := parcel.RestoreParcel(kernel.NewUUID(),
			"1 St", "Jane", "j@e.com", "2 Sender Ave", "Acme", 1.2, registered, stored)

		require.NoError(t, err)
		assert.Equal(t, stored, p.ExpectedDeliveryDate())
	})
}

func TestNewHistoryEntry(t *testing.T) {
	entryDate := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("should create entry for a valid transition", func(t *testing.T) {
		id := kernel.NewUUID()
		e, err := parcel.NewHistoryEntry(id, parcel.AtCentral, parcel.AtCentralMessage, entryDate)

		require.NoError(t, err)
		assert.NoError(t, e.Validate())
		assert.True(t, id.IsEqual(e.ParcelID()))
		assert.Equal(t, parcel.AtCentral, e.Status())
		assert.Equal(t, parcel.AtCentralMessage, e.Message())
		assert.Equal(t, entryDate, e.EntryDate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := parcel.NewHistoryEntry(kernel.NewUUID(), parcel.Unknown, "msg", entryDate)
		require.Error(t, err)
	})

	t.Run("should reject empty message", func(t *testing.T) {
		_, err := parcel.NewHistoryEntry(kernel.NewUUID(), parcel.InRoute, "", entryDate)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero entry date", func(t *testing.T) {
		_, err := parcel.NewHistoryEntry(kernel.NewUUID(), parcel.InRoute, parcel.InRouteMessage, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewTracking(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("should create tracking record", func(t *testing.T) {
		parcelID := kernel.NewUUID()
		driverID := kernel.NewUUID()

		tr, err := parcel.NewTracking(parcelID, driverID, parcel.InRouteDeliveryTime(now))

		require.NoError(t, err)
		assert.NoError(t, tr.Validate())
		assert.True(t, parcelID.IsEqual(tr.ParcelID()))
		assert.True(t, driverID.IsEqual(tr.DriverID()))
		assert.Equal(t, now.Add(8*time.Hour), tr.ExpectedDeliveryTime())
	})

	t.Run("should reject unconstructed driver ID", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := parcel.NewTracking(kernel.NewUUID(), zeroID, parcel.InRouteDeliveryTime(now))
		require.Error(t, err)
	})

	t.Run("zero value tracking fails validation", func(t *testing.T) {
		var tr parcel.Tracking
		require.ErrorIs(t, tr.Validate(), parcel.ErrTrackingIsNotConstructed)
	})
}
