package parcelrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// InsertDetails saves the registration facts of a new parcel.
func (r *GormParcelRepository) InsertDetails(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := detailsFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetDetails retrieves a parcel's registration facts by ID.
func (r *GormParcelRepository) GetDetails(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DetailsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return detailsToDomain(dto)
}

// AppendHistory adds one entry to the parcel's status history log.
// The log is append-only so this is always an insert.
func (r *GormParcelRepository) AppendHistory(ctx context.Context, entry *parcel.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListHistory retrieves all history entries for a parcel in insertion order.
func (r *GormParcelRepository) ListHistory(ctx context.Context, id kernel.UUID) ([]*parcel.HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Order("entry_date, id").
		Find(&dtos, "parcel_id = ?", id.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*parcel.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := historyToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// UpsertTracking creates or overwrites the parcel's tracking record.
func (r *GormParcelRepository) UpsertTracking(ctx context.Context, tracking *parcel.Tracking) error {
	if err := tracking.Validate(); err != nil {
		return err
	}

	dto := trackingFromDomain(tracking)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "parcel_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetTracking retrieves the parcel's tracking record.
// Returns (nil, nil) when no record exists; a package that never left the
// central facility is not an error.
func (r *GormParcelRepository) GetTracking(ctx context.Context, id kernel.UUID) (*parcel.Tracking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return trackingToDomain(dto)
}

// FindRecipientEmail resolves the recipient email for a parcel.
func (r *GormParcelRepository) FindRecipientEmail(ctx context.Context, id kernel.UUID) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}

	var email string
	err := r.db.WithContext(ctx).
		Model(&DetailsDTO{}).
		Select("receiver_email").
		Where("id = ?", id.Bytes()).
		Take(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("parcel", id.String())
		}
		return "", err
	}

	return email, nil
}
