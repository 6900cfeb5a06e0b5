// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitType represents the period a habit frequency refers to.
type HabitType string

const (
	HabitTypeDaily   HabitType = "daily"
	HabitTypeWeekly  HabitType = "weekly"
	HabitTypeMonthly HabitType = "monthly"
)

// IsValid reports whether t is a known habit type.
func (t HabitType) IsValid() bool {
	switch t {
	case HabitTypeDaily, HabitTypeWeekly, HabitTypeMonthly:
		return true
	}
	return false
}

// Habit represents a recurring activity of a user.
// A user can hold at most one habit per activity.
type Habit struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ActivityID uuid.UUID
	Activity   *Activity
	Frequency  int
	Type       HabitType
	LastDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewHabit creates a new Habit entity.
func NewHabit(userID, activityID uuid.UUID, frequency int, habitType HabitType, lastDate time.Time) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:         uuid.New(),
		UserID:     userID,
		ActivityID: activityID,
		Frequency:  frequency,
		Type:       habitType,
		LastDate:   lastDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
