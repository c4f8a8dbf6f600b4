package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/internal/interfaces/http/middleware"
	"borrowbank.backend/internal/interfaces/http/response"
	"borrowbank.backend/internal/usecases"
)

// BusinessHandler handles business endpoints. All routes sit behind
// the borrower guard, so the borrower id is always in context.
type BusinessHandler struct {
	businessUsecase *usecases.BusinessUsecase
}

// NewBusinessHandler creates a new business handler.
func NewBusinessHandler(businessUsecase *usecases.BusinessUsecase) *BusinessHandler {
	return &BusinessHandler{businessUsecase: businessUsecase}
}

func borrowerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetBorrowerID(c)
	if !ok {
		response.Error(c, domainerrors.ErrBorrowerRequired)
	}
	return id, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// Create registers a new business.
// POST /api/v1/businesses
func (h *BusinessHandler) Create(c *gin.Context) {
	ownerID, ok := borrowerID(c)
	if !ok {
		return
	}

	var input entities.BusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	business, err := h.businessUsecase.Create(c.Request.Context(), ownerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, business)
}

// List returns the borrower's businesses.
// GET /api/v1/businesses
func (h *BusinessHandler) List(c *gin.Context) {
	ownerID, ok := borrowerID(c)
	if !ok {
		return
	}

	businesses, err := h.businessUsecase.List(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"businesses": businesses})
}

// Get returns one business.
// GET /api/v1/businesses/:id
func (h *BusinessHandler) Get(c *gin.Context) {
	ownerID, ok := borrowerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	business, err := h.businessUsecase.Get(c.Request.Context(), id, ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, business)
}

// Update replaces a business's details.
// PUT /api/v1/businesses/:id
func (h *BusinessHandler) Update(c *gin.Context) {
	ownerID, ok := borrowerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.BusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	business, err := h.businessUsecase.Update(c.Request.Context(), id, ownerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, business)
}

// Delete removes a business.
// DELETE /api/v1/businesses/:id
func (h *BusinessHandler) Delete(c *gin.Context) {
	ownerID, ok := borrowerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.businessUsecase.Delete(c.Request.Context(), id, ownerID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
