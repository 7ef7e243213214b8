package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// commitmentService handles recurring-commitment business logic.
type commitmentService struct {
	store *store.Store
}

// NewCommitmentService creates a new CommitmentServicer.
func NewCommitmentService(s *store.Store) CommitmentServicer {
	return &commitmentService{store: s}
}

// CreateCommitment creates a new commitment in the upcoming state.
func (s *commitmentService) CreateCommitment(
	name string,
	amount int64,
	categoryID string,
	dueDate time.Time,
	recurrence models.Recurrence,
) (*models.Commitment, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "commitment name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if !recurrence.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid recurrence")
	}
	if err := s.requireCategory(categoryID); err != nil {
		return nil, err
	}

	commitment := &models.Commitment{
		Name:       name,
		Amount:     amount,
		CategoryID: categoryID,
		DueDate:    dueDate,
		Recurrence: recurrence,
		Status:     models.CommitmentStatusUpcoming,
	}
	if err := s.store.Commitments.Create(commitment); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return commitment, nil
}

// ListCommitments retrieves all commitments sorted by due date ascending,
// with the overdue state derived against now.
func (s *commitmentService) ListCommitments(now time.Time) ([]models.Commitment, error) {
	commitments, err := s.store.Commitments.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range commitments {
		commitments[i].Status = commitments[i].EffectiveStatus(now)
	}
	sort.Slice(commitments, func(i, j int) bool {
		return commitments[i].DueDate.Before(commitments[j].DueDate)
	})
	return commitments, nil
}

// UpdateCommitment applies a partial update to an existing commitment and
// returns it with the overdue state derived against now.
func (s *commitmentService) UpdateCommitment(id string, patch CommitmentPatch, now time.Time) (*models.Commitment, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "commitment name is required")
		}
		fields["name"] = *patch.Name
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		fields["amount"] = *patch.Amount
	}
	if patch.CategoryID != nil {
		if err := s.requireCategory(*patch.CategoryID); err != nil {
			return nil, err
		}
		fields["categoryId"] = *patch.CategoryID
	}
	if patch.DueDate != nil {
		fields["dueDate"] = *patch.DueDate
	}
	if patch.Recurrence != nil {
		if !patch.Recurrence.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid recurrence")
		}
		fields["recurrence"] = *patch.Recurrence
	}

	commitment, err := s.store.Commitments.Patch(id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrCommitmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	commitment.Status = commitment.EffectiveStatus(now)
	return commitment, nil
}

// DeleteCommitment removes a commitment by ID.
func (s *commitmentService) DeleteCommitment(id string) error {
	existed, err := s.store.Commitments.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !existed {
		return apperrors.ErrCommitmentNotFound
	}
	return nil
}

// PayCommitment settles a commitment: it emits an expense transaction for
// the commitment's amount and either marks the commitment paid (one-off) or
// advances its due date by one recurrence period.
func (s *commitmentService) PayCommitment(id string, now time.Time) (*PayReceipt, error) {
	commitment, err := s.store.Commitments.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrCommitmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if commitment.Status == models.CommitmentStatusPaid {
		return nil, apperrors.ErrCommitmentAlreadyPaid
	}

	txn := &models.Transaction{
		Amount:      commitment.Amount,
		Type:        models.TransactionTypeExpense,
		CategoryID:  commitment.CategoryID,
		Date:        now,
		Description: fmt.Sprintf("Paid: %s", commitment.Name),
	}
	if err := s.store.Transactions.Create(txn); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	fields := map[string]any{}
	if commitment.Recurrence == models.RecurrenceNone {
		fields["status"] = models.CommitmentStatusPaid
	} else {
		fields["status"] = models.CommitmentStatusUpcoming
		fields["dueDate"] = models.NextDueDate(commitment.DueDate, commitment.Recurrence)
	}

	updated, err := s.store.Commitments.Patch(id, fields)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// A commitment behind by more than one period is still overdue after
	// the advance; derive the read-time view like every other read path.
	updated.Status = updated.EffectiveStatus(now)

	return &PayReceipt{Transaction: *txn, Commitment: *updated}, nil
}

func (s *commitmentService) requireCategory(id string) error {
	exists, err := s.store.Categories.Exists(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !exists {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
