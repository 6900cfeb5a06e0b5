package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/usecase/footprint"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/integration/entrypoint/dto"
)

// FootprintController handles activity record endpoints.
type FootprintController struct {
	listUseCase   *footprint.ListFootprintsUseCase
	createUseCase *footprint.CreateFootprintUseCase
	updateUseCase *footprint.UpdateFootprintUseCase
	deleteUseCase *footprint.DeleteFootprintUseCase
}

// NewFootprintController creates a new footprint controller instance.
func NewFootprintController(
	listUseCase *footprint.ListFootprintsUseCase,
	createUseCase *footprint.CreateFootprintUseCase,
	updateUseCase *footprint.UpdateFootprintUseCase,
	deleteUseCase *footprint.DeleteFootprintUseCase,
) *FootprintController {
	return &FootprintController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /footprints requests.
func (c *FootprintController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	categoryID, ok := parseCategoryQuery(ctx)
	if !ok {
		return
	}

	input := footprint.ListFootprintsInput{
		UserID:     userID,
		Search:     ctx.Query("search"),
		CategoryID: categoryID,
	}

	for param, target := range map[string]**time.Time{"from": &input.From, "to": &input.To} {
		raw := ctx.Query(param)
		if raw == "" {
			continue
		}
		date, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, "Invalid "+param+" date, expected YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateFilter))
			return
		}
		*target = &date
	}

	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(ctx, http.StatusBadRequest, "Invalid limit", string(domainerror.ErrCodeInvalidDateFilter))
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFootprintListResponse(output.Footprints))
}

// Create handles POST /footprints requests.
func (c *FootprintController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateFootprintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingFootprintField))
		return
	}

	occurredOn, err := time.Parse(dto.DateLayout, req.OccurredOn)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid occurred_on, expected YYYY-MM-DD", string(domainerror.ErrCodeMissingOccurredOn))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), footprint.CreateFootprintInput{
		UserID:     userID,
		ActivityID: uuid.MustParse(req.ActivityID),
		Quantity:   *req.Quantity,
		Unit:       req.Unit,
		OccurredOn: occurredOn,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToFootprintResponse(output.Footprint))
}

// Update handles PATCH /footprints/:id requests.
func (c *FootprintController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	footprintID, ok := parseFootprintID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFootprintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingFootprintField))
		return
	}

	input := footprint.UpdateFootprintInput{
		FootprintID: footprintID,
		UserID:      userID,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
	}
	if req.ActivityID != nil {
		activityID := uuid.MustParse(*req.ActivityID)
		input.ActivityID = &activityID
	}
	if req.OccurredOn != nil {
		occurredOn, err := time.Parse(dto.DateLayout, *req.OccurredOn)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, "Invalid occurred_on, expected YYYY-MM-DD", string(domainerror.ErrCodeMissingOccurredOn))
			return
		}
		input.OccurredOn = &occurredOn
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFootprintResponse(output.Footprint))
}

// Delete handles DELETE /footprints/:id requests.
func (c *FootprintController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	footprintID, ok := parseFootprintID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), footprint.DeleteFootprintInput{
		FootprintID: footprintID,
		UserID:      userID,
	}); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseFootprintID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid footprint ID format", string(domainerror.ErrCodeFootprintNotFound))
		return uuid.Nil, false
	}
	return id, true
}
