package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/interfaces/http/middleware"
	"borrowbank.backend/internal/interfaces/http/response"
	"borrowbank.backend/internal/usecases"
)

// BorrowerHandler handles phone verification and activation endpoints.
type BorrowerHandler struct {
	borrowerUsecase *usecases.BorrowerUsecase
}

// NewBorrowerHandler creates a new borrower handler.
func NewBorrowerHandler(borrowerUsecase *usecases.BorrowerUsecase) *BorrowerHandler {
	return &BorrowerHandler{borrowerUsecase: borrowerUsecase}
}

// VerifyPhone sends a verification code to the given number.
// POST /api/v1/borrowers/verify-phone
func (h *BorrowerHandler) VerifyPhone(c *gin.Context) {
	var input entities.VerifyPhoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.borrowerUsecase.VerifyPhone(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"message": "verification code sent"})
}

// Activate creates the borrower profile for the authenticated user.
// POST /api/v1/borrowers/activate
func (h *BorrowerHandler) Activate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.ActivateBorrowerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.borrowerUsecase.Activate(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	response.Success(c, status, resp)
}

// Me returns the authenticated user's borrower profile.
// GET /api/v1/borrowers/me
func (h *BorrowerHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	profile, err := h.borrowerUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}
