package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// FootprintFilter holds optional filters for listing a user's records.
type FootprintFilter struct {
	Search     string
	CategoryID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Limit      int
}

// ImpactTotals is the aggregate computed by the database for one user.
type ImpactTotals struct {
	Total float64
	Count int64
}

// RecordStore is the read boundary the impact engine consumes.
type RecordStore interface {
	// FetchRecordsForUser returns all records of the user with Activity and
	// Category resolved, newest first.
	FetchRecordsForUser(ctx context.Context, userID uuid.UUID) ([]*entity.ActivityRecord, error)
}

// FootprintRepository defines persistence operations for activity records.
type FootprintRepository interface {
	RecordStore

	Create(ctx context.Context, record *entity.ActivityRecord) error
	Update(ctx context.Context, record *entity.ActivityRecord) error

	// Delete removes the record only if it belongs to userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindByID returns domainerror.ErrFootprintNotFound when no record matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivityRecord, error)

	// FindByUser lists records ordered by OccurredOn then CreatedAt, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter FootprintFilter) ([]*entity.ActivityRecord, error)

	// ImpactTotals sums quantity times emission factor in the database.
	ImpactTotals(ctx context.Context, userID uuid.UUID) (*ImpactTotals, error)
}
