package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack/backend/internal/application/usecase/recommendation"
	"github.com/ecotrack/backend/internal/integration/entrypoint/dto"
)

// RecommendationController serves reduction advice.
type RecommendationController struct {
	listUseCase    *recommendation.ListRecommendationsUseCase
	suggestUseCase *recommendation.SuggestRecommendationsUseCase
}

// NewRecommendationController creates a new recommendation controller instance.
func NewRecommendationController(
	listUseCase *recommendation.ListRecommendationsUseCase,
	suggestUseCase *recommendation.SuggestRecommendationsUseCase,
) *RecommendationController {
	return &RecommendationController{
		listUseCase:    listUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /recommendations requests.
func (c *RecommendationController) List(ctx *gin.Context) {
	categoryID, ok := parseCategoryQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recommendation.ListRecommendationsInput{
		CategoryID: categoryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecommendationListResponse(output.Recommendations, ""))
}

// Suggested handles GET /recommendations/suggested requests.
func (c *RecommendationController) Suggested(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), recommendation.SuggestRecommendationsInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRecommendationListResponse(output.Recommendations, output.Source))
}
