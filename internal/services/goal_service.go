package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// savingsCategoryName is the category used for goal contribution expenses.
const savingsCategoryName = "Savings"

// goalService handles savings-goal business logic.
type goalService struct {
	store *store.Store
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(s *store.Store) GoalServicer {
	return &goalService{store: s}
}

// CreateGoal creates a new goal with nothing saved yet.
func (s *goalService) CreateGoal(name string, targetAmount int64, deadline time.Time) (*models.Goal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
	}

	goal := &models.Goal{
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: 0,
		Deadline:      deadline,
	}
	if err := s.store.Goals.Create(goal); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// ListGoals retrieves all goals sorted by deadline ascending.
func (s *goalService) ListGoals() ([]models.Goal, error) {
	goals, err := s.store.Goals.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Deadline.Before(goals[j].Deadline)
	})
	return goals, nil
}

// UpdateGoal applies a partial update. The target can never be lowered
// beneath the amount already saved.
func (s *goalService) UpdateGoal(id string, patch GoalPatch) (*models.Goal, error) {
	current, err := s.store.Goals.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
		}
		fields["name"] = *patch.Name
	}
	if patch.TargetAmount != nil {
		if *patch.TargetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
		}
		if *patch.TargetAmount < current.CurrentAmount {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount cannot be below the amount already saved")
		}
		fields["targetAmount"] = *patch.TargetAmount
	}
	if patch.Deadline != nil {
		fields["deadline"] = *patch.Deadline
	}

	goal, err := s.store.Goals.Patch(id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// DeleteGoal removes a goal by ID.
func (s *goalService) DeleteGoal(id string) error {
	existed, err := s.store.Goals.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !existed {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

// Contribute moves money into a goal: it emits an expense transaction in
// the Savings category and increments the goal's saved amount. The
// contribution must not push the goal past its target.
func (s *goalService) Contribute(id string, amount int64, now time.Time) (*ContributionReceipt, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contribution amount must be positive")
	}

	goal, err := s.store.Goals.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if goal.CurrentAmount+amount > goal.TargetAmount {
		return nil, apperrors.ErrGoalTargetExceeded
	}

	savings, err := s.findSavingsCategory()
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		Amount:      amount,
		Type:        models.TransactionTypeExpense,
		CategoryID:  savings.ID,
		Date:        now,
		Description: fmt.Sprintf("Contribution to goal: %s", goal.Name),
	}
	if err := s.store.Transactions.Create(txn); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updated, err := s.store.Goals.Patch(id, map[string]any{
		"currentAmount": goal.CurrentAmount + amount,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &ContributionReceipt{Transaction: *txn, Goal: *updated}, nil
}

func (s *goalService) findSavingsCategory() (*models.Category, error) {
	categories, err := s.store.Categories.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, savingsCategoryName) {
			return &categories[i], nil
		}
	}
	return nil, apperrors.ErrSavingsCategoryMissing
}
