package footprint

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/infra/observability"
)

// DeleteFootprintInput represents the input for record deletion.
type DeleteFootprintInput struct {
	FootprintID uuid.UUID
	UserID      uuid.UUID
}

// DeleteFootprintUseCase handles record deletion logic.
type DeleteFootprintUseCase struct {
	footprintRepo adapter.FootprintRepository
	reportCache   adapter.ReportCache
}

// NewDeleteFootprintUseCase creates a new DeleteFootprintUseCase instance.
func NewDeleteFootprintUseCase(footprintRepo adapter.FootprintRepository, reportCache adapter.ReportCache) *DeleteFootprintUseCase {
	return &DeleteFootprintUseCase{
		footprintRepo: footprintRepo,
		reportCache:   reportCache,
	}
}

// Execute performs the record deletion.
func (uc *DeleteFootprintUseCase) Execute(ctx context.Context, input DeleteFootprintInput) error {
	if err := uc.footprintRepo.Delete(ctx, input.FootprintID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrFootprintNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete footprint: %w", err)
	}

	observability.RecordFootprintWrite("delete")
	invalidateReports(ctx, uc.reportCache, input.UserID)
	return nil
}
