package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/integration/entrypoint/dto"
	"github.com/ecotrack/backend/internal/integration/entrypoint/middleware"
)

// handleError writes the response for a use case error. Domain errors carry
// their code; anything else is logged and reported as an internal error.
func handleError(ctx *gin.Context, err error) {
	var (
		authErr      *domainerror.AuthError
		catalogErr   *domainerror.CatalogError
		footprintErr *domainerror.FootprintError
		habitErr     *domainerror.HabitError
		reportErr    *domainerror.ReportError
	)

	switch {
	case errors.As(err, &authErr):
		writeError(ctx, authStatus(authErr.Code), authErr.Message, string(authErr.Code))
	case errors.As(err, &catalogErr):
		writeError(ctx, catalogStatus(catalogErr.Code), catalogErr.Message, string(catalogErr.Code))
	case errors.As(err, &footprintErr):
		writeError(ctx, footprintStatus(footprintErr.Code), footprintErr.Message, string(footprintErr.Code))
	case errors.As(err, &habitErr):
		writeError(ctx, habitStatus(habitErr.Code), habitErr.Message, string(habitErr.Code))
	case errors.As(err, &reportErr):
		writeError(ctx, reportStatus(reportErr.Code), reportErr.Message, string(reportErr.Code))
	default:
		slog.Error("Request failed", "method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func writeError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}

// requireUserID returns the authenticated user or writes a 401.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		writeError(ctx, http.StatusUnauthorized, "User not authenticated", string(domainerror.ErrCodeMissingToken))
		return uuid.Nil, false
	}
	return userID, true
}

func authStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func catalogStatus(code domainerror.CatalogErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeActivityNotFound,
		domainerror.ErrCodeRecommendationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCategoryID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func footprintStatus(code domainerror.FootprintErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeMissingOccurredOn,
		domainerror.ErrCodeFutureOccurredOn,
		domainerror.ErrCodeMissingUnit,
		domainerror.ErrCodeInvalidDateFilter,
		domainerror.ErrCodeMissingFootprintField:
		return http.StatusBadRequest
	case domainerror.ErrCodeFootprintActivity:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeFootprintNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func habitStatus(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeInvalidHabitType,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeHabitActivity:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeHabitAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func reportStatus(code domainerror.ReportErrorCode) int {
	if code == domainerror.ErrCodeInvalidTopN {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
