package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/interfaces/http/middleware"
	"borrowbank.backend/internal/interfaces/http/response"
	"borrowbank.backend/internal/usecases"
)

// HomeHandler serves the dashboard summary.
type HomeHandler struct {
	homeUsecase *usecases.HomeUsecase
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(homeUsecase *usecases.HomeUsecase) *HomeHandler {
	return &HomeHandler{homeUsecase: homeUsecase}
}

// Summary returns the borrower profile, businesses and loans of the
// authenticated user. Works before activation too, with empty lists.
// GET /api/v1/home
func (h *HomeHandler) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	summary, err := h.homeUsecase.Summary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}
