package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// CommitmentHandler handles recurring-commitment requests.
type CommitmentHandler struct {
	commitmentService services.CommitmentServicer
	now               func() time.Time
}

// NewCommitmentHandler creates a new CommitmentHandler.
func NewCommitmentHandler(commitmentService services.CommitmentServicer) *CommitmentHandler {
	return &CommitmentHandler{commitmentService: commitmentService, now: time.Now}
}

// CreateCommitmentRequest represents the request payload for creating a commitment.
type CreateCommitmentRequest struct {
	Name       string    `json:"name" binding:"required,min=1,max=100"`
	Amount     int64     `json:"amount" binding:"required,gt=0"`
	CategoryID string    `json:"categoryId" binding:"required"`
	DueDate    time.Time `json:"dueDate" binding:"required"`
	Recurrence string    `json:"recurrence" binding:"required,recurrence"`
}

// UpdateCommitmentRequest represents the partial request payload for
// updating a commitment. The status is not updatable; it only changes
// through the pay endpoint.
type UpdateCommitmentRequest struct {
	Name       *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Amount     *int64     `json:"amount" binding:"omitempty,gt=0"`
	CategoryID *string    `json:"categoryId"`
	DueDate    *time.Time `json:"dueDate"`
	Recurrence *string    `json:"recurrence" binding:"omitempty,recurrence"`
}

// CreateCommitment handles the creation of a new commitment.
// @Summary     Create a commitment
// @Description Create a new one-time or recurring commitment
// @Tags        commitments
// @Accept      json
// @Produce     json
// @Param       request body CreateCommitmentRequest true "Commitment details"
// @Success     201 {object} SuccessResponse "Commitment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commitments [post]
func (h *CommitmentHandler) CreateCommitment(c *gin.Context) {
	var req CreateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	commitment, err := h.commitmentService.CreateCommitment(
		req.Name, req.Amount, req.CategoryID, req.DueDate, models.Recurrence(req.Recurrence),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, commitment)
}

// GetCommitments handles listing all commitments.
// @Summary     Get commitments
// @Description Get all commitments sorted by due date, with overdue derived against the current time
// @Tags        commitments
// @Produce     json
// @Success     200 {object} SuccessResponse "List of commitments"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commitments [get]
func (h *CommitmentHandler) GetCommitments(c *gin.Context) {
	commitments, err := h.commitmentService.ListCommitments(h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, commitments)
}

// UpdateCommitment handles a partial update of a commitment.
// @Summary     Update a commitment
// @Description Apply a partial update to an existing commitment
// @Tags        commitments
// @Accept      json
// @Produce     json
// @Param       id      path string                  true "Commitment ID"
// @Param       request body UpdateCommitmentRequest true "Fields to change"
// @Success     200 {object} SuccessResponse "Updated commitment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Commitment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commitments/{id} [put]
func (h *CommitmentHandler) UpdateCommitment(c *gin.Context) {
	var req UpdateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.CommitmentPatch{
		Name:       req.Name,
		Amount:     req.Amount,
		CategoryID: req.CategoryID,
		DueDate:    req.DueDate,
	}
	if req.Recurrence != nil {
		recurrence := models.Recurrence(*req.Recurrence)
		patch.Recurrence = &recurrence
	}

	commitment, err := h.commitmentService.UpdateCommitment(c.Param("id"), patch, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, commitment)
}

// DeleteCommitment handles deleting a commitment.
// @Summary     Delete a commitment
// @Description Delete a commitment by ID
// @Tags        commitments
// @Produce     json
// @Param       id path string true "Commitment ID"
// @Success     200 {object} SuccessResponse "Deleted"
// @Failure     404 {object} ErrorResponse "Commitment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commitments/{id} [delete]
func (h *CommitmentHandler) DeleteCommitment(c *gin.Context) {
	if err := h.commitmentService.DeleteCommitment(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// PayCommitment handles settling a commitment.
// @Summary     Pay a commitment
// @Description Record an expense for the commitment and advance or settle its schedule
// @Tags        commitments
// @Produce     json
// @Param       id path string true "Commitment ID"
// @Success     200 {object} SuccessResponse "Pay receipt with transaction and commitment"
// @Failure     404 {object} ErrorResponse "Commitment not found"
// @Failure     409 {object} ErrorResponse "Commitment already paid"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /commitments/{id}/pay [post]
func (h *CommitmentHandler) PayCommitment(c *gin.Context) {
	receipt, err := h.commitmentService.PayCommitment(c.Param("id"), h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, receipt)
}
