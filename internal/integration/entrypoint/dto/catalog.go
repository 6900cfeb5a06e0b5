package dto

import "github.com/ecotrack/backend/internal/domain/entity"

// CategoryResponse represents a category with its emission factor.
type CategoryResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	EmissionFactor float64 `json:"emission_factor"`
	Unit           string  `json:"unit"`
	Color          string  `json:"color"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ActivityResponse represents an activity in API responses.
type ActivityResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	CategoryID string            `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

// ActivityListResponse represents the response for listing activities.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		EmissionFactor: c.EmissionFactor,
		Unit:           c.Unit,
		Color:          c.Color,
	}
}

// ToCategoryListResponse converts categories to a CategoryListResponse DTO.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return CategoryListResponse{Categories: out}
}

// ToActivityResponse converts a domain Activity entity to an ActivityResponse DTO.
func ToActivityResponse(a *entity.Activity) ActivityResponse {
	response := ActivityResponse{
		ID:         a.ID.String(),
		Name:       a.Name,
		CategoryID: a.CategoryID.String(),
	}
	if a.Category != nil {
		category := ToCategoryResponse(a.Category)
		response.Category = &category
	}
	return response
}

// ToActivityListResponse converts activities to an ActivityListResponse DTO.
func ToActivityListResponse(activities []*entity.Activity) ActivityListResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ToActivityResponse(a))
	}
	return ActivityListResponse{Activities: out}
}
