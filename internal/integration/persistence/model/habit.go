package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// HabitModel represents the habits table. The (user, activity) pair is unique.
type HabitModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_habits_user_activity"`
	ActivityID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_habits_user_activity"`
	Activity   *ActivityModel `gorm:"foreignKey:ActivityID"`
	Frequency  int            `gorm:"not null"`
	Type       string         `gorm:"type:varchar(10);not null;default:'daily'"`
	LastDate   time.Time      `gorm:"type:date;not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	habit := &entity.Habit{
		ID:         m.ID,
		UserID:     m.UserID,
		ActivityID: m.ActivityID,
		Frequency:  m.Frequency,
		Type:       entity.HabitType(m.Type),
		LastDate:   m.LastDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Activity != nil {
		habit.Activity = m.Activity.ToEntity()
	}
	return habit
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	return &HabitModel{
		ID:         habit.ID,
		UserID:     habit.UserID,
		ActivityID: habit.ActivityID,
		Frequency:  habit.Frequency,
		Type:       string(habit.Type),
		LastDate:   habit.LastDate,
		CreatedAt:  habit.CreatedAt,
		UpdatedAt:  habit.UpdatedAt,
	}
}
