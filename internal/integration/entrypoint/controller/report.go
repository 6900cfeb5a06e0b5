package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack/backend/internal/application/usecase/report"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/integration/entrypoint/dto"
)

// ReportController serves the aggregated impact views.
type ReportController struct {
	impactUseCase  *report.GetImpactReportUseCase
	summaryUseCase *report.GetSummaryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(impactUseCase *report.GetImpactReportUseCase, summaryUseCase *report.GetSummaryUseCase) *ReportController {
	return &ReportController{
		impactUseCase:  impactUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// Impact handles GET /reports/impact requests.
func (c *ReportController) Impact(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := report.GetImpactReportInput{UserID: userID}
	if raw := ctx.Query("top"); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, "top must be an integer", string(domainerror.ErrCodeInvalidTopN))
			return
		}
		input.TopN = &top
	}

	output, err := c.impactUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToImpactReportResponse(output))
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
