package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
type CreateTransactionRequest struct {
	Amount      int64     `json:"amount" binding:"required,gt=0"`
	Type        string    `json:"type" binding:"required,transaction_type"`
	CategoryID  string    `json:"categoryId" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description"`
}

// UpdateTransactionRequest represents the partial request payload for
// updating a transaction. Absent fields are left untouched.
type UpdateTransactionRequest struct {
	Amount      *int64     `json:"amount" binding:"omitempty,gt=0"`
	Type        *string    `json:"type" binding:"omitempty,transaction_type"`
	CategoryID  *string    `json:"categoryId"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

// CreateTransaction handles recording a new transaction.
// @Summary     Create a transaction
// @Description Record a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} SuccessResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	txn, err := h.transactionService.CreateTransaction(
		req.Amount, models.TransactionType(req.Type), req.CategoryID, req.Date, req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, txn)
}

// GetTransactions handles listing transactions with optional filters.
// @Summary     Get transactions
// @Description Get transactions filtered by search text, type, category, and date window, newest first
// @Tags        transactions
// @Produce     json
// @Param       q          query string false "Search text matched against descriptions"
// @Param       type       query string false "Filter by type (income/expense/all)"
// @Param       categoryId query string false "Filter by category ID (or all)"
// @Param       from       query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param       to         query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success     200 {object} SuccessResponse "List of transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.TransactionFilter{
		Query:      c.Query("q"),
		Type:       c.Query("type"),
		CategoryID: c.Query("categoryId"),
		From:       from,
		To:         to,
	}

	transactions, err := h.transactionService.ListTransactions(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, transactions)
}

// UpdateTransaction handles a partial update of a transaction.
// @Summary     Update a transaction
// @Description Apply a partial update to an existing transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} SuccessResponse "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.TransactionPatch{
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Date:        req.Date,
		Description: req.Description,
	}
	if req.Type != nil {
		txType := models.TransactionType(*req.Type)
		patch.Type = &txType
	}

	txn, err := h.transactionService.UpdateTransaction(c.Param("id"), patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, txn)
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete a transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} SuccessResponse "Deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// GetSummary handles the dashboard summary aggregation.
// @Summary     Get dashboard summary
// @Description Get total income, total expenses, and balance over an optional date window
// @Tags        summary
// @Produce     json
// @Param       from query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param       to   query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success     200 {object} SuccessResponse "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.Summary(from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, summary)
}
