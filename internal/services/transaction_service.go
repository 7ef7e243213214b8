package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store *store.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s *store.Store) TransactionServicer {
	return &transactionService{store: s}
}

// CreateTransaction records a new income or expense transaction.
func (s *transactionService) CreateTransaction(
	amount int64,
	txType models.TransactionType,
	categoryID string,
	date time.Time,
	description string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}

	if err := s.requireCategory(categoryID); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		Amount:      amount,
		Type:        txType,
		CategoryID:  categoryID,
		Date:        date,
		Description: description,
	}
	if err := s.store.Transactions.Create(txn); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return txn, nil
}

// ListTransactions retrieves transactions matching the filter, newest first.
func (s *transactionService) ListTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	transactions, err := s.store.Transactions.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if query != "" && !strings.Contains(strings.ToLower(txn.Description), query) {
			continue
		}
		if filter.Type != "" && filter.Type != "all" && string(txn.Type) != filter.Type {
			continue
		}
		if filter.CategoryID != "" && filter.CategoryID != "all" && txn.CategoryID != filter.CategoryID {
			continue
		}
		if !inWindow(txn.Date, filter.From, filter.To) {
			continue
		}
		filtered = append(filtered, txn)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered, nil
}

// UpdateTransaction applies a partial update to an existing transaction.
func (s *transactionService) UpdateTransaction(id string, patch TransactionPatch) (*models.Transaction, error) {
	fields := map[string]any{}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		fields["amount"] = *patch.Amount
	}
	if patch.Type != nil {
		if *patch.Type != models.TransactionTypeIncome && *patch.Type != models.TransactionTypeExpense {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
		}
		fields["type"] = *patch.Type
	}
	if patch.CategoryID != nil {
		if err := s.requireCategory(*patch.CategoryID); err != nil {
			return nil, err
		}
		fields["categoryId"] = *patch.CategoryID
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	txn, err := s.store.Transactions.Patch(id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txn, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *transactionService) DeleteTransaction(id string) error {
	existed, err := s.store.Transactions.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !existed {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// Summary aggregates income, expenses and balance over an optional date window.
func (s *transactionService) Summary(from, to *time.Time) (*models.DashboardSummary, error) {
	transactions, err := s.store.Transactions.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &models.DashboardSummary{}
	for _, txn := range transactions {
		if !inWindow(txn.Date, from, to) {
			continue
		}
		switch txn.Type {
		case models.TransactionTypeIncome:
			summary.Income += txn.Amount
		case models.TransactionTypeExpense:
			summary.Expenses += txn.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expenses
	return summary, nil
}

// requireCategory fails with ErrCategoryNotFound when the ID is unknown.
func (s *transactionService) requireCategory(id string) error {
	exists, err := s.store.Categories.Exists(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !exists {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// inWindow reports whether t falls inside the inclusive [from, to] window.
func inWindow(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
