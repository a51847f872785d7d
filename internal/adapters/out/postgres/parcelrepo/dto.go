// Package parcelrepo provides data transfer objects and mapping functions for
// package persistence. Implements the repository pattern over the three tables
// that make up a package: its registration details, its append-only status
// history, and its tracking record.
package parcelrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// DetailsDTO represents the database structure for package registration facts.
// One row per package, written once at registration and never updated.
type DetailsDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReceiverAddress      string
	ReceiverName         string
	ReceiverEmail        string
	SenderAddress        string
	SenderName           string
	WeightKg             float64
	Registered           time.Time
	ExpectedDeliveryDate time.Time
}

// TableName specifies the database table name for package details.
func (DetailsDTO) TableName() string {
	return "package_details"
}

// HistoryDTO represents one entry of a package's status history log.
// The surrogate key preserves insertion order for entries sharing a timestamp.
type HistoryDTO struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	Message   string
	EntryDate time.Time
}

// TableName specifies the database table name for history entries.
func (HistoryDTO) TableName() string {
	return "package_history"
}

// TrackingDTO represents the tracking record of a package in route.
// The package identifier is the primary key, so a second in-route transition
// overwrites the previous trip instead of adding a row.
type TrackingDTO struct {
	ParcelID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID             uuid.UUID `gorm:"type:uuid"`
	ExpectedDeliveryTime time.Time
}

// TableName specifies the database table name for tracking records.
func (TrackingDTO) TableName() string {
	return "package_tracking"
}

// detailsFromDomain converts a parcel aggregate to its database representation.
func detailsFromDomain(aggregate *parcel.Parcel) DetailsDTO {
	return DetailsDTO{
		ID:                   aggregate.ID().Bytes(),
		ReceiverAddress:      aggregate.ReceiverAddress(),
		ReceiverName:         aggregate.ReceiverName(),
		ReceiverEmail:        aggregate.ReceiverEmail(),
		SenderAddress:        aggregate.SenderAddress(),
		SenderName:           aggregate.SenderName(),
		WeightKg:             aggregate.WeightKg(),
		Registered:           aggregate.Registered(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
	}
}

// detailsToDomain converts a database DTO back to a parcel aggregate.
// Uses RestoreParcel so the stored delivery date survives the round trip.
func detailsToDomain(dto DetailsDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.ReceiverAddress, dto.ReceiverName, dto.ReceiverEmail,
		dto.SenderAddress, dto.SenderName,
		dto.WeightKg,
		dto.Registered,
		dto.ExpectedDeliveryDate,
	)
}

// historyFromDomain converts a history entry to its database representation.
// The surrogate key is left zero so the database assigns it on insert.
func historyFromDomain(entry *parcel.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		ParcelID:  entry.ParcelID().Bytes(),
		Status:    int(entry.Status()),
		Message:   entry.Message(),
		EntryDate: entry.EntryDate(),
	}
}

// historyToDomain converts a database DTO back to a history entry.
func historyToDomain(dto HistoryDTO) (*parcel.HistoryEntry, error) {
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return parcel.NewHistoryEntry(parcelID, parcel.Status(dto.Status), dto.Message, dto.EntryDate)
}

// trackingFromDomain converts a tracking record to its database representation.
func trackingFromDomain(tracking *parcel.Tracking) TrackingDTO {
	return TrackingDTO{
		ParcelID:             tracking.ParcelID().Bytes(),
		DriverID:             tracking.DriverID().Bytes(),
		ExpectedDeliveryTime: tracking.ExpectedDeliveryTime(),
	}
}

// trackingToDomain converts a database DTO back to a tracking record.
func trackingToDomain(dto TrackingDTO) (*parcel.Tracking, error) {
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return parcel.NewTracking(parcelID, driverID, dto.ExpectedDeliveryTime)
}
