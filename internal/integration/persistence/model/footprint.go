package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// FootprintModel represents the footprints table: one logged activity record.
type FootprintModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_footprints_user_date,priority:1"`
	ActivityID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Activity   *ActivityModel `gorm:"foreignKey:ActivityID"`
	Quantity   float64        `gorm:"not null"`
	Unit       string         `gorm:"type:varchar(20);not null"`
	OccurredOn time.Time      `gorm:"type:date;not null;index:idx_footprints_user_date,priority:2"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

// TableName returns the table name for the FootprintModel.
func (FootprintModel) TableName() string {
	return "footprints"
}

// ToEntity converts a FootprintModel to a domain ActivityRecord.
func (m *FootprintModel) ToEntity() *entity.ActivityRecord {
	record := &entity.ActivityRecord{
		ID:         m.ID,
		UserID:     m.UserID,
		ActivityID: m.ActivityID,
		Quantity:   m.Quantity,
		Unit:       m.Unit,
		OccurredOn: m.OccurredOn,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Activity != nil {
		record.Activity = m.Activity.ToEntity()
	}
	return record
}

// FootprintFromEntity creates a FootprintModel from a domain ActivityRecord.
func FootprintFromEntity(record *entity.ActivityRecord) *FootprintModel {
	return &FootprintModel{
		ID:         record.ID,
		UserID:     record.UserID,
		ActivityID: record.ActivityID,
		Quantity:   record.Quantity,
		Unit:       record.Unit,
		OccurredOn: record.OccurredOn,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}
