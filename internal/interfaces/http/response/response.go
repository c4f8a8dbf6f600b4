package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/pkg/logger"
)

// Success sends a success response.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors carry their own status;
// bare sentinels are mapped here. Anything unrecognized becomes a 500
// and gets logged, so internals never leak to the client.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrPhoneNumberTaken),
		errors.Is(err, domainerrors.ErrBusinessHasLoans),
		errors.Is(err, domainerrors.ErrLoanNotPending):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrInvalidCode),
		errors.Is(err, domainerrors.ErrInvalidPhoneNumber),
		errors.Is(err, domainerrors.ErrRateMismatch):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrBorrowerRequired):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrNotImplemented):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
