// Package footprint contains use cases for logging activity records.
package footprint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/infra/observability"
)

// CreateFootprintInput represents the input for logging a record.
type CreateFootprintInput struct {
	UserID     uuid.UUID
	ActivityID uuid.UUID
	Quantity   float64
	Unit       string // Optional, defaults to the category unit
	OccurredOn time.Time
}

// CreateFootprintOutput represents the output of logging a record.
type CreateFootprintOutput struct {
	Footprint *entity.ActivityRecord
}

// CreateFootprintUseCase handles record creation logic.
type CreateFootprintUseCase struct {
	footprintRepo adapter.FootprintRepository
	activityRepo  adapter.ActivityRepository
	reportCache   adapter.ReportCache
}

// NewCreateFootprintUseCase creates a new CreateFootprintUseCase instance.
func NewCreateFootprintUseCase(
	footprintRepo adapter.FootprintRepository,
	activityRepo adapter.ActivityRepository,
	reportCache adapter.ReportCache,
) *CreateFootprintUseCase {
	return &CreateFootprintUseCase{
		footprintRepo: footprintRepo,
		activityRepo:  activityRepo,
		reportCache:   reportCache,
	}
}

// Execute performs the record creation.
func (uc *CreateFootprintUseCase) Execute(ctx context.Context, input CreateFootprintInput) (*CreateFootprintOutput, error) {
	if input.ActivityID == uuid.Nil {
		return nil, domainerror.NewFootprintError(
			domainerror.ErrCodeMissingFootprintField,
			"activity_id is required",
			nil,
		)
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	occurredOn, err := validateOccurredOn(input.OccurredOn)
	if err != nil {
		return nil, err
	}

	activity, err := findActivity(ctx, uc.activityRepo, input.ActivityID)
	if err != nil {
		return nil, err
	}

	unit := strings.TrimSpace(input.Unit)
	if unit == "" && activity.Category != nil {
		unit = activity.Category.Unit
	}
	if unit == "" {
		return nil, domainerror.NewFootprintError(
			domainerror.ErrCodeMissingUnit,
			"unit is required",
			domainerror.ErrMissingUnit,
		)
	}

	record := entity.NewActivityRecord(input.UserID, activity, input.Quantity, unit, occurredOn)
	if err := uc.footprintRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create footprint: %w", err)
	}

	observability.RecordFootprintWrite("create")
	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &CreateFootprintOutput{Footprint: record}, nil
}

// validateQuantity rejects NaN, infinities and negative quantities.
func validateQuantity(quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
		return domainerror.NewFootprintError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be a finite number greater than or equal to zero",
			domainerror.ErrInvalidQuantity,
		)
	}
	return nil
}

// validateOccurredOn returns the date truncated to midnight UTC. Today is
// accepted, any later day is not.
func validateOccurredOn(occurredOn time.Time) (time.Time, error) {
	if occurredOn.IsZero() {
		return time.Time{}, domainerror.NewFootprintError(
			domainerror.ErrCodeMissingOccurredOn,
			"occurred_on is required",
			domainerror.ErrMissingOccurredOn,
		)
	}

	day := truncateToDay(occurredOn)
	if day.After(truncateToDay(time.Now())) {
		return time.Time{}, domainerror.NewFootprintError(
			domainerror.ErrCodeFutureOccurredOn,
			"occurred_on cannot be in the future",
			domainerror.ErrFutureOccurredOn,
		)
	}
	return day, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func findActivity(ctx context.Context, repo adapter.ActivityRepository, id uuid.UUID) (*entity.Activity, error) {
	activity, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return nil, domainerror.NewFootprintError(
				domainerror.ErrCodeFootprintActivity,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}
	return activity, nil
}

// invalidateReports drops cached reports of the user. Failures are logged only.
func invalidateReports(ctx context.Context, cache adapter.ReportCache, userID uuid.UUID) {
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate report cache", "user_id", userID, "error", err)
	}
}
