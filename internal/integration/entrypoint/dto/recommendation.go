package dto

import "github.com/ecotrack/backend/internal/domain/entity"

// RecommendationResponse represents a piece of advice in API responses.
type RecommendationResponse struct {
	ID                string  `json:"id"`
	CategoryID        string  `json:"category_id"`
	CategoryName      string  `json:"category_name,omitempty"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	EstimatedSavingKg float64 `json:"estimated_saving_kg"`
	Icon              string  `json:"icon,omitempty"`
}

// RecommendationListResponse represents the response for listing advice.
type RecommendationListResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Source          string                   `json:"source,omitempty"`
}

// ToRecommendationResponse converts a domain Recommendation to its DTO.
func ToRecommendationResponse(r *entity.Recommendation) RecommendationResponse {
	response := RecommendationResponse{
		ID:                r.ID.String(),
		CategoryID:        r.CategoryID.String(),
		Title:             r.Title,
		Description:       r.Description,
		EstimatedSavingKg: r.EstimatedSavingKg,
		Icon:              r.Icon,
	}
	if r.Category != nil {
		response.CategoryName = r.Category.Name
	}
	return response
}

// ToRecommendationListResponse converts recommendations to a list DTO.
func ToRecommendationListResponse(recommendations []*entity.Recommendation, source string) RecommendationListResponse {
	out := make([]RecommendationResponse, 0, len(recommendations))
	for _, r := range recommendations {
		out = append(out, ToRecommendationResponse(r))
	}
	return RecommendationListResponse{Recommendations: out, Source: source}
}
