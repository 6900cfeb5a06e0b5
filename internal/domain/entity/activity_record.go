// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is a logged occurrence of an activity ("footprint").
// The impact of a record is never stored; it is derived from Quantity and the
// emission factor of the resolved category.
type ActivityRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ActivityID uuid.UUID
	Activity   *Activity // Resolved with its Category by the record store
	Quantity   float64
	Unit       string
	OccurredOn time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewActivityRecord creates a new ActivityRecord entity.
func NewActivityRecord(userID uuid.UUID, activity *Activity, quantity float64, unit string, occurredOn time.Time) *ActivityRecord {
	now := time.Now().UTC()

	return &ActivityRecord{
		ID:         uuid.New(),
		UserID:     userID,
		ActivityID: activity.ID,
		Activity:   activity,
		Quantity:   quantity,
		Unit:       unit,
		OccurredOn: occurredOn,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Category returns the resolved category of the record, or nil if the
// activity or its category could not be resolved.
func (r *ActivityRecord) Category() *Category {
	if r == nil || r.Activity == nil {
		return nil
	}
	return r.Activity.Category
}
