package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usdtgate/usdtgate/internal/core/domain"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest:          http.StatusBadRequest,
	domain.ErrNotificationInvalid: http.StatusBadRequest,
	domain.ErrNotifyUnauthorized:  http.StatusUnauthorized,
	domain.ErrPayServerURLMissing: http.StatusInternalServerError,
	domain.ErrAddressUnavailable:  http.StatusServiceUnavailable,

	domain.ErrTradeNoEmpty:     http.StatusUnprocessableEntity,
	domain.ErrBasePriceInvalid: http.StatusUnprocessableEntity,
	domain.ErrPaymentDisabled:  http.StatusNotFound,
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusFromError(err error) int {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		return http.StatusInternalServerError
	}
	return statusCode
}

// handleValidationError sends an error response for a request that failed binding
func handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// handleAbort sends an error response and stops the handler chain
func handleAbort(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(statusFromError(err), errorResponse{Error: err.Error()})
}

func handleError(ctx *gin.Context, err error) {
	ctx.JSON(statusFromError(err), errorResponse{Error: err.Error()})
}

func handleSuccess(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, data)
}
