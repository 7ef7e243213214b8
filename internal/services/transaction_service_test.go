package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCreateTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewTransactionService(s)
		cat := testutil.CreateTestCategory(t, s)

		txn, err := svc.CreateTransaction(12500, models.TransactionTypeExpense, cat.ID, day(2024, 3, 10), "Weekly groceries")
		testutil.AssertNoError(t, err)

		if txn.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if txn.Amount != 12500 {
			t.Errorf("expected amount 12500, got %d", txn.Amount)
		}
		if txn.CategoryID != cat.ID {
			t.Errorf("expected category %s, got %s", cat.ID, txn.CategoryID)
		}
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewTransactionService(s)
		cat := testutil.CreateTestCategory(t, s)

		_, err := svc.CreateTransaction(0, models.TransactionTypeExpense, cat.ID, day(2024, 3, 10), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_category", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewTransactionService(s)

		_, err := svc.CreateTransaction(100, models.TransactionTypeExpense, "missing", day(2024, 3, 10), "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("invalid_type", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewTransactionService(s)
		cat := testutil.CreateTestCategory(t, s)

		_, err := svc.CreateTransaction(100, models.TransactionType("transfer"), cat.ID, day(2024, 3, 10), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListTransactions(t *testing.T) {
	setup := func(t *testing.T) (TransactionServicer, *models.Category, *models.Category) {
		t.Helper()
		s := testutil.SetupTestStore(t)
		svc := NewTransactionService(s)
		food := testutil.CreateTestCategoryWithName(t, s, "Food")
		salary := testutil.CreateTestCategoryWithName(t, s, "Salary")

		mustCreate := func(amount int64, txType models.TransactionType, catID string, date time.Time, desc string) {
			_, err := svc.CreateTransaction(amount, txType, catID, date, desc)
			testutil.AssertNoError(t, err)
		}
		mustCreate(5000, models.TransactionTypeExpense, food.ID, day(2024, 3, 1), "Lunch at cafe")
		mustCreate(300000, models.TransactionTypeIncome, salary.ID, day(2024, 3, 5), "March salary")
		mustCreate(7000, models.TransactionTypeExpense, food.ID, day(2024, 3, 9), "Dinner out")
		return svc, food, salary
	}

	t.Run("sorted_newest_first", func(t *testing.T) {
		svc, _, _ := setup(t)

		transactions, err := svc.ListTransactions(TransactionFilter{})
		testutil.AssertNoError(t, err)

		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(transactions))
		}
		for i := 1; i < len(transactions); i++ {
			if transactions[i].Date.After(transactions[i-1].Date) {
				t.Errorf("expected descending dates, got %v before %v", transactions[i-1].Date, transactions[i].Date)
			}
		}
	})

	t.Run("query_matches_description_case_insensitively", func(t *testing.T) {
		svc, _, _ := setup(t)

		transactions, err := svc.ListTransactions(TransactionFilter{Query: "DINNER"})
		testutil.AssertNoError(t, err)
		if len(transactions) != 1 || transactions[0].Description != "Dinner out" {
			t.Errorf("expected only the dinner transaction, got %+v", transactions)
		}
	})

	t.Run("type_filter", func(t *testing.T) {
		svc, _, _ := setup(t)

		transactions, err := svc.ListTransactions(TransactionFilter{Type: "income"})
		testutil.AssertNoError(t, err)
		if len(transactions) != 1 || transactions[0].Type != models.TransactionTypeIncome {
			t.Errorf("expected only income, got %+v", transactions)
		}
	})

	t.Run("all_sentinel_means_unfiltered", func(t *testing.T) {
		svc, _, _ := setup(t)

		transactions, err := svc.ListTransactions(TransactionFilter{Type: "all", CategoryID: "all"})
		testutil.AssertNoError(t, err)
		if len(transactions) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(transactions))
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		svc, food, _ := setup(t)

		transactions, err := svc.ListTransactions(TransactionFilter{CategoryID: food.ID})
		testutil.AssertNoError(t, err)
		if len(transactions) != 2 {
			t.Errorf("expected 2 food transactions, got %d", len(transactions))
		}
	})

	t.Run("inclusive_date_window", func(t *testing.T) {
		svc, _, _ := setup(t)

		from := day(2024, 3, 5)
		to := day(2024, 3, 9)
		transactions, err := svc.ListTransactions(TransactionFilter{From: &from, To: &to})
		testutil.AssertNoError(t, err)
		if len(transactions) != 2 {
			t.Errorf("expected 2 transactions in window, got %d", len(transactions))
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("partial_patch", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewTransactionService(s)
		cat := testutil.CreateTestCategory(t, s)
		txn := testutil.CreateTestTransaction(t, s, cat.ID, models.TransactionTypeExpense, 5000)

		amount := int64(9999)
		updated, err := svc.UpdateTransaction(txn.ID, TransactionPatch{Amount: &amount})
		testutil.AssertNoError(t, err)

		if updated.Amount != 9999 {
			t.Errorf("expected amount 9999, got %d", updated.Amount)
		}
		if updated.CategoryID != cat.ID {
			t.Errorf("category must survive a partial patch, got %s", updated.CategoryID)
		}
	})

	t.Run("unknown_category_rejected_before_mutation", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewTransactionService(s)
		cat := testutil.CreateTestCategory(t, s)
		txn := testutil.CreateTestTransaction(t, s, cat.ID, models.TransactionTypeExpense, 5000)

		missing := "missing"
		_, err := svc.UpdateTransaction(txn.ID, TransactionPatch{CategoryID: &missing})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		unchanged, err := s.Transactions.Get(txn.ID)
		testutil.AssertNoError(t, err)
		if unchanged.CategoryID != cat.ID {
			t.Errorf("expected category untouched, got %s", unchanged.CategoryID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewTransactionService(s)

		amount := int64(100)
		_, err := svc.UpdateTransaction("missing", TransactionPatch{Amount: &amount})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewTransactionService(s)
	cat := testutil.CreateTestCategory(t, s)
	txn := testutil.CreateTestTransaction(t, s, cat.ID, models.TransactionTypeExpense, 5000)

	testutil.AssertNoError(t, svc.DeleteTransaction(txn.ID))
	testutil.AssertAppError(t, svc.DeleteTransaction(txn.ID), "TRANSACTION_NOT_FOUND")
}

func TestSummary(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewTransactionService(s)
	food := testutil.CreateTestCategoryWithName(t, s, "Food")
	salary := testutil.CreateTestCategoryWithName(t, s, "Salary")

	_, err := svc.CreateTransaction(300000, models.TransactionTypeIncome, salary.ID, day(2024, 3, 1), "Salary")
	testutil.AssertNoError(t, err)
	_, err = svc.CreateTransaction(40000, models.TransactionTypeExpense, food.ID, day(2024, 3, 10), "Groceries")
	testutil.AssertNoError(t, err)
	_, err = svc.CreateTransaction(10000, models.TransactionTypeExpense, food.ID, day(2024, 4, 2), "Groceries")
	testutil.AssertNoError(t, err)

	t.Run("all_time", func(t *testing.T) {
		summary, err := svc.Summary(nil, nil)
		testutil.AssertNoError(t, err)

		if summary.Income != 300000 || summary.Expenses != 50000 || summary.Balance != 250000 {
			t.Errorf("unexpected summary %+v", summary)
		}
	})

	t.Run("windowed", func(t *testing.T) {
		from := day(2024, 3, 1)
		to := day(2024, 3, 31)
		summary, err := svc.Summary(&from, &to)
		testutil.AssertNoError(t, err)

		if summary.Income != 300000 || summary.Expenses != 40000 || summary.Balance != 260000 {
			t.Errorf("unexpected windowed summary %+v", summary)
		}
	})
}
