package dto

import (
	"time"

	"github.com/ecotrack/backend/internal/application/usecase/report"
)

// ImpactReportResponse represents the full impact report. All kg figures are
// rounded to one decimal place.
type ImpactReportResponse struct {
	Total           float64                 `json:"total_kg"`
	Average         float64                 `json:"average_kg"`
	RecordCount     int                     `json:"record_count"`
	ByCategory      []CategoryShareResponse `json:"by_category"`
	MonthlyTrend    []MonthlyPointResponse  `json:"monthly_trend"`
	TopContributors []PointResponse         `json:"top_contributors"`
	TopN            int                     `json:"top_n"`
	GeneratedAt     time.Time               `json:"generated_at"`
	Cached          bool                    `json:"cached"`
}

// CategoryShareResponse is one category's impact and share of the total.
type CategoryShareResponse struct {
	Category   string  `json:"category"`
	Value      float64 `json:"value_kg"`
	Percentage float64 `json:"percentage"`
}

// MonthlyPointResponse is one month of the trend.
type MonthlyPointResponse struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Label string  `json:"label"`
	Value float64 `json:"value_kg"`
}

// PointResponse is a labelled value.
type PointResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value_kg"`
}

// SummaryResponse represents the home summary.
type SummaryResponse struct {
	Total        float64             `json:"total_kg"`
	RecordCount  int64               `json:"record_count"`
	Average      float64             `json:"average_kg"`
	DailyAverage float64             `json:"daily_average_kg"`
	WindowDays   int                 `json:"window_days"`
	Recent       []FootprintResponse `json:"recent"`
}

// ToImpactReportResponse converts a GetImpactReportOutput to its DTO.
func ToImpactReportResponse(output *report.GetImpactReportOutput) ImpactReportResponse {
	byCategory := make([]CategoryShareResponse, 0, len(output.ByCategory))
	for _, c := range output.ByCategory {
		byCategory = append(byCategory, CategoryShareResponse{
			Category:   c.Category,
			Value:      round1(c.Value),
			Percentage: c.Percentage,
		})
	}

	trend := make([]MonthlyPointResponse, 0, len(output.MonthlyTrend))
	for _, p := range output.MonthlyTrend {
		trend = append(trend, MonthlyPointResponse{
			Year:  p.Year,
			Month: int(p.Month),
			Label: p.Label,
			Value: round1(p.Value),
		})
	}

	top := make([]PointResponse, 0, len(output.TopContributors))
	for _, p := range output.TopContributors {
		top = append(top, PointResponse{Label: p.Label, Value: round1(p.Value)})
	}

	return ImpactReportResponse{
		Total:           round1(output.Total),
		Average:         round1(output.Average),
		RecordCount:     output.RecordCount,
		ByCategory:      byCategory,
		MonthlyTrend:    trend,
		TopContributors: top,
		TopN:            output.TopN,
		GeneratedAt:     output.GeneratedAt,
		Cached:          output.Cached,
	}
}

// ToSummaryResponse converts a GetSummaryOutput to its DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Total:        round1(output.Total),
		RecordCount:  output.RecordCount,
		Average:      round1(output.Average),
		DailyAverage: round1(output.DailyAverage),
		WindowDays:   output.WindowDays,
		Recent:       ToFootprintListResponse(output.Recent).Footprints,
	}
}
