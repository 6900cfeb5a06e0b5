package footprint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/infra/observability"
)

// UpdateFootprintInput represents the input for record update.
type UpdateFootprintInput struct {
	FootprintID uuid.UUID
	UserID      uuid.UUID
	ActivityID  *uuid.UUID // Optional
	Quantity    *float64   // Optional
	Unit        *string    // Optional
	OccurredOn  *time.Time // Optional
}

// UpdateFootprintOutput represents the output of record update.
type UpdateFootprintOutput struct {
	Footprint *entity.ActivityRecord
}

// UpdateFootprintUseCase handles record update logic.
type UpdateFootprintUseCase struct {
	footprintRepo adapter.FootprintRepository
	activityRepo  adapter.ActivityRepository
	reportCache   adapter.ReportCache
}

// NewUpdateFootprintUseCase creates a new UpdateFootprintUseCase instance.
func NewUpdateFootprintUseCase(
	footprintRepo adapter.FootprintRepository,
	activityRepo adapter.ActivityRepository,
	reportCache adapter.ReportCache,
) *UpdateFootprintUseCase {
	return &UpdateFootprintUseCase{
		footprintRepo: footprintRepo,
		activityRepo:  activityRepo,
		reportCache:   reportCache,
	}
}

// Execute performs the record update. Records of other users are reported as
// not found.
func (uc *UpdateFootprintUseCase) Execute(ctx context.Context, input UpdateFootprintInput) (*UpdateFootprintOutput, error) {
	record, err := uc.footprintRepo.FindByID(ctx, input.FootprintID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFootprintNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find footprint: %w", err)
	}
	if record.UserID != input.UserID {
		return nil, notFound()
	}

	if input.ActivityID != nil && *input.ActivityID != record.ActivityID {
		activity, err := findActivity(ctx, uc.activityRepo, *input.ActivityID)
		if err != nil {
			return nil, err
		}
		record.ActivityID = activity.ID
		record.Activity = activity
		// Without an explicit unit, follow the new category's unit
		if input.Unit == nil && activity.Category != nil && activity.Category.Unit != "" {
			record.Unit = activity.Category.Unit
		}
	}

	if input.Quantity != nil {
		if err := validateQuantity(*input.Quantity); err != nil {
			return nil, err
		}
		record.Quantity = *input.Quantity
	}

	if input.Unit != nil {
		unit := strings.TrimSpace(*input.Unit)
		if unit == "" {
			return nil, domainerror.NewFootprintError(
				domainerror.ErrCodeMissingUnit,
				"unit cannot be empty",
				domainerror.ErrMissingUnit,
			)
		}
		record.Unit = unit
	}

	if input.OccurredOn != nil {
		occurredOn, err := validateOccurredOn(*input.OccurredOn)
		if err != nil {
			return nil, err
		}
		record.OccurredOn = occurredOn
	}

	record.UpdatedAt = time.Now().UTC()

	if err := uc.footprintRepo.Update(ctx, record); err != nil {
		if errors.Is(err, domainerror.ErrFootprintNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to update footprint: %w", err)
	}

	observability.RecordFootprintWrite("update")
	invalidateReports(ctx, uc.reportCache, input.UserID)

	return &UpdateFootprintOutput{Footprint: record}, nil
}

func notFound() error {
	return domainerror.NewFootprintError(
		domainerror.ErrCodeFootprintNotFound,
		"footprint not found",
		domainerror.ErrFootprintNotFound,
	)
}
