package dto

import (
	"time"

	"github.com/ecotrack/backend/internal/domain/entity"
	"github.com/ecotrack/backend/internal/domain/impact"
)

// CreateFootprintRequest represents the request body for logging a record.
// Quantity is a pointer so that an explicit zero is accepted.
type CreateFootprintRequest struct {
	ActivityID string   `json:"activity_id" binding:"required,uuid"`
	Quantity   *float64 `json:"quantity" binding:"required"`
	Unit       string   `json:"unit,omitempty"`
	OccurredOn string   `json:"occurred_on" binding:"required"`
}

// UpdateFootprintRequest represents the request body for record update.
type UpdateFootprintRequest struct {
	ActivityID *string  `json:"activity_id,omitempty" binding:"omitempty,uuid"`
	Quantity   *float64 `json:"quantity,omitempty"`
	Unit       *string  `json:"unit,omitempty"`
	OccurredOn *string  `json:"occurred_on,omitempty"`
}

// FootprintResponse represents a logged record in API responses.
type FootprintResponse struct {
	ID         string            `json:"id"`
	ActivityID string            `json:"activity_id"`
	Activity   *ActivityResponse `json:"activity,omitempty"`
	Quantity   float64           `json:"quantity"`
	Unit       string            `json:"unit"`
	OccurredOn string            `json:"occurred_on"`
	Impact     float64           `json:"impact_kg"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// FootprintListResponse represents the response for listing records.
type FootprintListResponse struct {
	Footprints []FootprintResponse `json:"footprints"`
}

// ToFootprintResponse converts a domain ActivityRecord to a FootprintResponse DTO.
func ToFootprintResponse(r *entity.ActivityRecord) FootprintResponse {
	value, _ := impact.Of(r)
	response := FootprintResponse{
		ID:         r.ID.String(),
		ActivityID: r.ActivityID.String(),
		Quantity:   r.Quantity,
		Unit:       r.Unit,
		OccurredOn: r.OccurredOn.Format(DateLayout),
		Impact:     round1(value),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Activity != nil {
		activity := ToActivityResponse(r.Activity)
		response.Activity = &activity
	}
	return response
}

// ToFootprintListResponse converts records to a FootprintListResponse DTO.
func ToFootprintListResponse(records []*entity.ActivityRecord) FootprintListResponse {
	out := make([]FootprintResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToFootprintResponse(r))
	}
	return FootprintListResponse{Footprints: out}
}
