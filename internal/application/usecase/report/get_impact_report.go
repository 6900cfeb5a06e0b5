package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecotrack/backend/internal/application/adapter"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/domain/impact"
	"github.com/ecotrack/backend/internal/infra/observability"
)

// GetImpactReportInput represents the input for the impact report.
type GetImpactReportInput struct {
	UserID uuid.UUID
	TopN   *int // Optional, defaults to Options.DefaultTopN
}

// CategoryShare is the impact of one category and its share of the total.
type CategoryShare struct {
	Category   string  `json:"category"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// GetImpactReportOutput is the full aggregated view of a user's records.
// It is cached as JSON, so every field carries a tag.
type GetImpactReportOutput struct {
	Total           float64               `json:"total"`
	Average         float64               `json:"average"`
	RecordCount     int                   `json:"record_count"`
	ByCategory      []CategoryShare       `json:"by_category"`
	MonthlyTrend    []impact.MonthlyPoint `json:"monthly_trend"`
	TopContributors []impact.Point        `json:"top_contributors"`
	TopN            int                   `json:"top_n"`
	GeneratedAt     time.Time             `json:"generated_at"`
	Cached          bool                  `json:"-"`
}

// GetImpactReportUseCase computes the impact report through the aggregation
// engine, caching results per user and top N.
type GetImpactReportUseCase struct {
	recordStore adapter.RecordStore
	reportCache adapter.ReportCache
	options     Options
}

// NewGetImpactReportUseCase creates a new GetImpactReportUseCase instance.
func NewGetImpactReportUseCase(recordStore adapter.RecordStore, reportCache adapter.ReportCache, options Options) *GetImpactReportUseCase {
	return &GetImpactReportUseCase{
		recordStore: recordStore,
		reportCache: reportCache,
		options:     options.normalized(),
	}
}

// Execute returns the cached report when present, otherwise computes it.
func (uc *GetImpactReportUseCase) Execute(ctx context.Context, input GetImpactReportInput) (*GetImpactReportOutput, error) {
	topN, err := uc.resolveTopN(input.TopN)
	if err != nil {
		return nil, err
	}
	key := "impact:" + strconv.Itoa(topN)

	if cached := uc.fromCache(ctx, input.UserID, key); cached != nil {
		return cached, nil
	}

	// Read before the records so a write landing during the fetch keeps
	// this report out of the cache.
	generation, genErr := uc.reportCache.Generation(ctx, input.UserID)
	if genErr != nil {
		observability.RecordCacheError()
		slog.Warn("Failed to read report cache generation", "user_id", input.UserID, "error", genErr)
	}

	start := time.Now()
	records, err := uc.recordStore.FetchRecordsForUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	total := impact.Total(records)
	output := &GetImpactReportOutput{
		Total:           total,
		Average:         impact.Average(records),
		RecordCount:     len(records),
		ByCategory:      shares(impact.SortedByValue(impact.ByCategory(records)), total),
		MonthlyTrend:    impact.MonthlyTrend(records),
		TopContributors: impact.TopContributors(records, topN),
		TopN:            topN,
		GeneratedAt:     time.Now().UTC(),
	}
	observability.RecordReportComputed(observability.ReportImpact, time.Since(start))

	if genErr == nil {
		uc.toCache(ctx, input.UserID, key, output, generation)
	}
	return output, nil
}

func (uc *GetImpactReportUseCase) resolveTopN(topN *int) (int, error) {
	if topN == nil {
		return uc.options.DefaultTopN, nil
	}
	if *topN < 0 {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidTopN,
			"top must be zero or greater",
			domainerror.ErrInvalidTopN,
		)
	}
	if *topN > uc.options.MaxTopN {
		return uc.options.MaxTopN, nil
	}
	return *topN, nil
}

func (uc *GetImpactReportUseCase) fromCache(ctx context.Context, userID uuid.UUID, key string) *GetImpactReportOutput {
	payload, ok, err := uc.reportCache.Get(ctx, userID, key)
	if err != nil {
		observability.RecordCacheError()
		slog.Warn("Failed to read report cache", "user_id", userID, "key", key, "error", err)
		return nil
	}
	if !ok {
		observability.RecordCacheMiss()
		return nil
	}

	var output GetImpactReportOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		observability.RecordCacheError()
		slog.Warn("Discarding unreadable cached report", "user_id", userID, "key", key, "error", err)
		return nil
	}
	observability.RecordCacheHit()
	output.Cached = true
	return &output
}

func (uc *GetImpactReportUseCase) toCache(ctx context.Context, userID uuid.UUID, key string, output *GetImpactReportOutput, generation int64) {
	payload, err := json.Marshal(output)
	if err != nil {
		slog.Warn("Failed to encode report for cache", "user_id", userID, "error", err)
		return
	}
	if err := uc.reportCache.Set(ctx, userID, key, payload, generation); err != nil {
		observability.RecordCacheError()
		slog.Warn("Failed to write report cache", "user_id", userID, "key", key, "error", err)
	}
}

// shares attaches each category's percentage of the total, rounded to two
// places.
func shares(points []impact.Point, total float64) []CategoryShare {
	out := make([]CategoryShare, 0, len(points))
	totalDec := decimal.NewFromFloat(total)
	for _, p := range points {
		var percentage float64
		if !totalDec.IsZero() {
			pct := decimal.NewFromFloat(p.Value).Mul(decimal.NewFromInt(100)).Div(totalDec)
			percentage, _ = pct.Round(2).Float64()
		}
		out = append(out, CategoryShare{Category: p.Label, Value: p.Value, Percentage: percentage})
	}
	return out
}
