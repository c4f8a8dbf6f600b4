package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/interfaces/http/response"
	"borrowbank.backend/internal/usecases"
)

// LoanHandler handles loan endpoints. All routes sit behind the
// borrower guard.
type LoanHandler struct {
	loanUsecase *usecases.LoanUsecase
}

// NewLoanHandler creates a new loan handler.
func NewLoanHandler(loanUsecase *usecases.LoanUsecase) *LoanHandler {
	return &LoanHandler{loanUsecase: loanUsecase}
}

// Create records a loan request.
// POST /api/v1/loans
func (h *LoanHandler) Create(c *gin.Context) {
	bID, ok := borrowerID(c)
	if !ok {
		return
	}

	var input entities.CreateLoanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	loan, err := h.loanUsecase.Create(c.Request.Context(), bID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, loan)
}

// List returns a page of the borrower's loans.
// GET /api/v1/loans?page=1&limit=10
func (h *LoanHandler) List(c *gin.Context) {
	bID, ok := borrowerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	loans, meta, err := h.loanUsecase.List(c.Request.Context(), bID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"loans": loans, "pagination": meta})
}

// Get returns one loan.
// GET /api/v1/loans/:id
func (h *LoanHandler) Get(c *gin.Context) {
	bID, ok := borrowerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	loan, err := h.loanUsecase.Get(c.Request.Context(), id, bID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, loan)
}

// Cancel withdraws a pending loan request.
// POST /api/v1/loans/:id/cancel
func (h *LoanHandler) Cancel(c *gin.Context) {
	bID, ok := borrowerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	loan, err := h.loanUsecase.Cancel(c.Request.Context(), id, bID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, loan)
}
