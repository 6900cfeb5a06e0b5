package footprint

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
)

// ListFootprintsInput represents the input for listing records.
type ListFootprintsInput struct {
	UserID     uuid.UUID
	Search     string     // Optional, matched against the activity name
	CategoryID *uuid.UUID // Optional
	From       *time.Time // Optional, inclusive
	To         *time.Time // Optional, inclusive
	Limit      int        // Optional, 0 means no limit
}

// ListFootprintsOutput represents the output of listing records.
type ListFootprintsOutput struct {
	Footprints []*entity.ActivityRecord
}

// ListFootprintsUseCase handles record listing logic.
type ListFootprintsUseCase struct {
	footprintRepo adapter.FootprintRepository
}

// NewListFootprintsUseCase creates a new ListFootprintsUseCase instance.
func NewListFootprintsUseCase(footprintRepo adapter.FootprintRepository) *ListFootprintsUseCase {
	return &ListFootprintsUseCase{footprintRepo: footprintRepo}
}

// Execute performs the record listing.
func (uc *ListFootprintsUseCase) Execute(ctx context.Context, input ListFootprintsInput) (*ListFootprintsOutput, error) {
	filter := adapter.FootprintFilter{
		Search:     strings.TrimSpace(input.Search),
		CategoryID: input.CategoryID,
		Limit:      input.Limit,
	}

	if input.From != nil {
		from := truncateToDay(*input.From)
		filter.From = &from
	}
	if input.To != nil {
		to := truncateToDay(*input.To)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domainerror.NewFootprintError(
			domainerror.ErrCodeInvalidDateFilter,
			"from must not be after to",
			domainerror.ErrInvalidDateFilter,
		)
	}

	records, err := uc.footprintRepo.FindByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list footprints: %w", err)
	}
	return &ListFootprintsOutput{Footprints: records}, nil
}
