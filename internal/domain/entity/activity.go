// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a named action type (e.g. "Conducir coche") belonging to one Category.
type Activity struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
	Category   *Category // Resolved by the persistence layer, nil when unknown
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewActivity creates a new Activity entity bound to the given category.
func NewActivity(name string, category *Category) *Activity {
	now := time.Now().UTC()

	return &Activity{
		ID:         uuid.New(),
		Name:       name,
		CategoryID: category.ID,
		Category:   category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
