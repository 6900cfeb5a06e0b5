package dto

import (
	"time"

	"github.com/ecotrack/backend/internal/application/usecase/habit"
	"github.com/ecotrack/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	ActivityID string  `json:"activity_id" binding:"required,uuid"`
	Frequency  int     `json:"frequency"`
	Type       string  `json:"type" binding:"required"`
	LastDate   *string `json:"last_date,omitempty"`
}

// UpdateHabitRequest represents the request body for habit update.
type UpdateHabitRequest struct {
	Frequency *int    `json:"frequency,omitempty"`
	Type      *string `json:"type,omitempty"`
	LastDate  *string `json:"last_date,omitempty"`
}

// HabitResponse represents a habit in API responses.
type HabitResponse struct {
	ID              string            `json:"id"`
	ActivityID      string            `json:"activity_id"`
	Activity        *ActivityResponse `json:"activity,omitempty"`
	Frequency       int               `json:"frequency"`
	Type            string            `json:"type"`
	LastDate        string            `json:"last_date"`
	EstimatedImpact float64           `json:"estimated_impact_kg"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits               []HabitResponse `json:"habits"`
	TotalEstimatedImpact float64         `json:"total_estimated_impact_kg"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(h *entity.Habit) HabitResponse {
	response := HabitResponse{
		ID:              h.ID.String(),
		ActivityID:      h.ActivityID.String(),
		Frequency:       h.Frequency,
		Type:            string(h.Type),
		LastDate:        h.LastDate.Format(DateLayout),
		EstimatedImpact: round1(habit.EstimatedImpact(h)),
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
	if h.Activity != nil {
		activity := ToActivityResponse(h.Activity)
		response.Activity = &activity
	}
	return response
}

// ToHabitListResponse converts a ListHabitsOutput to a HabitListResponse DTO.
func ToHabitListResponse(output *habit.ListHabitsOutput) HabitListResponse {
	habits := make([]HabitResponse, 0, len(output.Habits))
	for _, h := range output.Habits {
		habits = append(habits, ToHabitResponse(h.Habit))
	}
	return HabitListResponse{
		Habits:               habits,
		TotalEstimatedImpact: round1(output.TotalEstimatedImpact),
	}
}
