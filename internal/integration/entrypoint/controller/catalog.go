package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/usecase/catalog"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/integration/entrypoint/dto"
)

// CatalogController serves the reference catalog.
type CatalogController struct {
	listCategoriesUseCase *catalog.ListCategoriesUseCase
	listActivitiesUseCase *catalog.ListActivitiesUseCase
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(
	listCategoriesUseCase *catalog.ListCategoriesUseCase,
	listActivitiesUseCase *catalog.ListActivitiesUseCase,
) *CatalogController {
	return &CatalogController{
		listCategoriesUseCase: listCategoriesUseCase,
		listActivitiesUseCase: listActivitiesUseCase,
	}
}

// ListCategories handles GET /categories requests.
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	output, err := c.listCategoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// ListActivities handles GET /activities requests.
func (c *CatalogController) ListActivities(ctx *gin.Context) {
	categoryID, ok := parseCategoryQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listActivitiesUseCase.Execute(ctx.Request.Context(), catalog.ListActivitiesInput{
		CategoryID: categoryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(output.Activities))
}

// parseCategoryQuery reads the optional category_id query parameter and
// writes a 400 when it is malformed.
func parseCategoryQuery(ctx *gin.Context) (*uuid.UUID, bool) {
	raw := ctx.Query("category_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid category ID format", string(domainerror.ErrCodeInvalidCategoryID))
		return nil, false
	}
	return &id, true
}
