package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// EmiHandler handles EMI borrowing requests.
type EmiHandler struct {
	emiService services.EmiServicer
}

// NewEmiHandler creates a new EmiHandler.
func NewEmiHandler(emiService services.EmiServicer) *EmiHandler {
	return &EmiHandler{emiService: emiService}
}

// CreateEmiRequest represents the request payload for creating a borrowing.
// The monthly installment and totals are always computed server-side.
type CreateEmiRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=100"`
	Principal    int64    `json:"principal" binding:"required,gt=0"`
	InterestRate *float64 `json:"interestRate" binding:"required,gte=0"`
	Tenure       int      `json:"tenure" binding:"required,gt=0"`
	InterestType string   `json:"interestType" binding:"required,interest_type"`
}

// UpdateEmiRequest represents the partial request payload for updating a
// borrowing. Changing any loan input recomputes the stored schedule.
type UpdateEmiRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Principal    *int64   `json:"principal" binding:"omitempty,gt=0"`
	InterestRate *float64 `json:"interestRate" binding:"omitempty,gte=0"`
	Tenure       *int     `json:"tenure" binding:"omitempty,gt=0"`
	InterestType *string  `json:"interestType" binding:"omitempty,interest_type"`
}

// CreateEmi handles recording a new borrowing.
// @Summary     Create an EMI borrowing
// @Description Record a loan and compute its monthly installment and totals
// @Tags        emis
// @Accept      json
// @Produce     json
// @Param       request body CreateEmiRequest true "Loan details"
// @Success     201 {object} SuccessResponse "Borrowing created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emis [post]
func (h *EmiHandler) CreateEmi(c *gin.Context) {
	var req CreateEmiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	borrowing, err := h.emiService.CreateEmi(
		req.Name, req.Principal, *req.InterestRate, req.Tenure, models.InterestType(req.InterestType),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, borrowing)
}

// GetEmis handles listing all borrowings.
// @Summary     Get EMI borrowings
// @Description Get all recorded borrowings sorted by name
// @Tags        emis
// @Produce     json
// @Success     200 {object} SuccessResponse "List of borrowings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emis [get]
func (h *EmiHandler) GetEmis(c *gin.Context) {
	borrowings, err := h.emiService.ListEmis()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, borrowings)
}

// UpdateEmi handles a partial update of a borrowing.
// @Summary     Update an EMI borrowing
// @Description Apply a partial update and recompute the repayment schedule
// @Tags        emis
// @Accept      json
// @Produce     json
// @Param       id      path string           true "Borrowing ID"
// @Param       request body UpdateEmiRequest true "Fields to change"
// @Success     200 {object} SuccessResponse "Updated borrowing"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Borrowing not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emis/{id} [put]
func (h *EmiHandler) UpdateEmi(c *gin.Context) {
	var req UpdateEmiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.EmiPatch{
		Name:         req.Name,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		Tenure:       req.Tenure,
	}
	if req.InterestType != nil {
		interestType := models.InterestType(*req.InterestType)
		patch.InterestType = &interestType
	}

	borrowing, err := h.emiService.UpdateEmi(c.Param("id"), patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, borrowing)
}

// DeleteEmi handles deleting a borrowing.
// @Summary     Delete an EMI borrowing
// @Description Delete a borrowing by ID
// @Tags        emis
// @Produce     json
// @Param       id path string true "Borrowing ID"
// @Success     200 {object} SuccessResponse "Deleted"
// @Failure     404 {object} ErrorResponse "Borrowing not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emis/{id} [delete]
func (h *EmiHandler) DeleteEmi(c *gin.Context) {
	if err := h.emiService.DeleteEmi(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
