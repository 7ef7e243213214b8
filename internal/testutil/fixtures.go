package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory stores a category with a unique name.
func CreateTestCategory(t *testing.T, s *store.Store) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, s, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName stores a category with the given name.
func CreateTestCategoryWithName(t *testing.T, s *store.Store, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := s.Categories.Create(category); err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction stores a transaction of the given type and amount (in cents).
func CreateTestTransaction(t *testing.T, s *store.Store, categoryID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		Amount:     amount,
		Type:       txType,
		CategoryID: categoryID,
		Date:       time.Now().UTC(),
	}
	if err := s.Transactions.Create(txn); err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

// CreateTestCommitment stores an upcoming commitment with the given recurrence.
func CreateTestCommitment(t *testing.T, s *store.Store, categoryID string, recurrence models.Recurrence, dueDate time.Time) *models.Commitment {
	t.Helper()

	commitment := &models.Commitment{
		Name:       fmt.Sprintf("Test Commitment %d", nextID()),
		Amount:     4999,
		CategoryID: categoryID,
		DueDate:    dueDate,
		Recurrence: recurrence,
		Status:     models.CommitmentStatusUpcoming,
	}
	if err := s.Commitments.Create(commitment); err != nil {
		t.Fatalf("failed to create test commitment: %v", err)
	}
	return commitment
}

// CreateTestGoal stores a goal with the given target and current amounts (in cents).
func CreateTestGoal(t *testing.T, s *store.Store, targetAmount, currentAmount int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      time.Now().UTC().AddDate(1, 0, 0),
	}
	if err := s.Goals.Create(goal); err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
