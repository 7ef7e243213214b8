package store

import (
	"time"

	"fintrack/internal/models"
)

// Demo content used to bootstrap an empty installation: default categories,
// a week of sample transactions, and a few example commitments. Dates are
// relative to the seed time so the dashboard window has data on first run.

func demoCategories() []*models.Category {
	return []*models.Category{
		{ID: "cat_1", Name: "Groceries"},
		{ID: "cat_2", Name: "Salary"},
		{ID: "cat_3", Name: "Rent"},
		{ID: "cat_4", Name: "Utilities"},
		{ID: "cat_5", Name: "Dining Out"},
		{ID: "cat_6", Name: "Freelance"},
		{ID: "cat_7", Name: "Transport"},
		{ID: "cat_8", Name: "Entertainment"},
		{ID: "cat_9", Name: "Subscription"},
	}
}

func demoTransactions(now time.Time) []*models.Transaction {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	return []*models.Transaction{
		{ID: "txn_1", Amount: 500000, Type: models.TransactionTypeIncome, CategoryID: "cat_2", Date: daysAgo(2), Description: "Monthly Salary"},
		{ID: "txn_2", Amount: 150000, Type: models.TransactionTypeExpense, CategoryID: "cat_3", Date: daysAgo(3), Description: "Apartment Rent"},
		{ID: "txn_3", Amount: 12550, Type: models.TransactionTypeExpense, CategoryID: "cat_1", Date: daysAgo(4), Description: "Weekly Groceries"},
		{ID: "txn_4", Amount: 7500, Type: models.TransactionTypeExpense, CategoryID: "cat_4", Date: daysAgo(5), Description: "Electricity Bill"},
		{ID: "txn_5", Amount: 5000, Type: models.TransactionTypeExpense, CategoryID: "cat_5", Date: daysAgo(6), Description: "Dinner with friends"},
		{ID: "txn_6", Amount: 75000, Type: models.TransactionTypeIncome, CategoryID: "cat_6", Date: daysAgo(7), Description: "Freelance Project"},
		{ID: "txn_7", Amount: 4200, Type: models.TransactionTypeExpense, CategoryID: "cat_7", Date: daysAgo(8), Description: "Gasoline"},
		{ID: "txn_8", Amount: 2500, Type: models.TransactionTypeExpense, CategoryID: "cat_8", Date: daysAgo(9), Description: "Movie Tickets"},
	}
}

func demoCommitments(now time.Time) []*models.Commitment {
	// The phone bill is seeded past due; its overdue state is derived at
	// read time, never stored.
	return []*models.Commitment{
		{ID: "com_1", Name: "Netflix Subscription", Amount: 1599, CategoryID: "cat_9", DueDate: now.AddDate(0, 0, 5), Recurrence: models.RecurrenceMonthly, Status: models.CommitmentStatusUpcoming},
		{ID: "com_2", Name: "Gym Membership", Amount: 4999, CategoryID: "cat_8", DueDate: now.AddDate(0, 0, 10), Recurrence: models.RecurrenceMonthly, Status: models.CommitmentStatusUpcoming},
		{ID: "com_3", Name: "Phone Bill", Amount: 7999, CategoryID: "cat_4", DueDate: now.AddDate(0, 0, -2), Recurrence: models.RecurrenceMonthly, Status: models.CommitmentStatusUpcoming},
	}
}

// SeedDemoData populates empty collections with demo content. Each
// collection seeds independently and idempotently; collections that already
// hold data are left untouched.
func (s *Store) SeedDemoData(now time.Time) error {
	if err := s.Categories.Seed(demoCategories()); err != nil {
		return err
	}
	if err := s.Transactions.Seed(demoTransactions(now)); err != nil {
		return err
	}
	return s.Commitments.Seed(demoCommitments(now))
}
