package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	"github.com/ecotrack/backend/internal/domain/impact"
	"github.com/ecotrack/backend/internal/infra/observability"
)

// GetSummaryInput represents the input for the home summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput is the compact overview shown on the home screen.
type GetSummaryOutput struct {
	Total        float64
	RecordCount  int64
	Average      float64
	DailyAverage float64
	WindowDays   int
	Recent       []*entity.ActivityRecord
}

// GetSummaryUseCase builds the home summary. The lifetime total is summed by
// the database, the daily average covers only the configured window. The
// three reads are independent and run concurrently.
//
// DailyAverage is the window's impact divided by the window length in days,
// not the lifetime total divided by 30, so older records never inflate it.
type GetSummaryUseCase struct {
	footprintRepo adapter.FootprintRepository
	options       Options
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(footprintRepo adapter.FootprintRepository, options Options) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		footprintRepo: footprintRepo,
		options:       options.normalized(),
	}
}

// Execute performs the summary computation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	start := time.Now()

	var (
		totals   *adapter.ImpactTotals
		windowed []*entity.ActivityRecord
		recent   []*entity.ActivityRecord
	)
	windowStart := today().AddDate(0, 0, -(uc.options.DailyWindow - 1))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if totals, err = uc.footprintRepo.ImpactTotals(gctx, input.UserID); err != nil {
			return fmt.Errorf("failed to sum impact: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		windowed, err = uc.footprintRepo.FindByUser(gctx, input.UserID, adapter.FootprintFilter{From: &windowStart})
		if err != nil {
			return fmt.Errorf("failed to fetch window records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = uc.footprintRepo.FindByUser(gctx, input.UserID, adapter.FootprintFilter{Limit: uc.options.RecentCount})
		if err != nil {
			return fmt.Errorf("failed to fetch recent records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var average float64
	if totals.Count > 0 {
		average = totals.Total / float64(totals.Count)
	}

	observability.RecordReportComputed(observability.ReportSummary, time.Since(start))

	return &GetSummaryOutput{
		Total:        totals.Total,
		RecordCount:  totals.Count,
		Average:      average,
		DailyAverage: impact.DailyAverage(windowed, uc.options.DailyWindow),
		WindowDays:   uc.options.DailyWindow,
		Recent:       recent,
	}, nil
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
