package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn func(amount int64, txType models.TransactionType, categoryID string, date time.Time, description string) (*models.Transaction, error)
	listTransactionsFn  func(filter services.TransactionFilter) ([]models.Transaction, error)
	updateTransactionFn func(id string, patch services.TransactionPatch) (*models.Transaction, error)
	deleteTransactionFn func(id string) error
	summaryFn           func(from, to *time.Time) (*models.DashboardSummary, error)
}

func (m *mockTransactionService) CreateTransaction(amount int64, txType models.TransactionType, categoryID string, date time.Time, description string) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(amount, txType, categoryID, date, description)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactions(filter services.TransactionFilter) ([]models.Transaction, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(filter)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(id string, patch services.TransactionPatch) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(id, patch)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

func (m *mockTransactionService) Summary(from, to *time.Time) (*models.DashboardSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(from, to)
	}
	return &models.DashboardSummary{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/transactions", handler.CreateTransaction)
	r.GET("/api/transactions", handler.GetTransactions)
	r.PUT("/api/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/api/transactions/:id", handler.DeleteTransaction)
	r.GET("/api/summary", handler.GetSummary)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(amount int64, txType models.TransactionType, categoryID string, date time.Time, description string) (*models.Transaction, error) {
				return &models.Transaction{
					ID:          "txn_1",
					Amount:      amount,
					Type:        txType,
					CategoryID:  categoryID,
					Date:        date,
					Description: description,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/api/transactions",
			`{"amount":12500,"type":"expense","categoryId":"cat_1","date":"2024-03-10T00:00:00Z","description":"Groceries"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		data := dataObject(t, parseJSON(t, rec))
		if data["amount"].(float64) != 12500 {
			t.Errorf("expected amount 12500, got %v", data["amount"])
		}
		if data["categoryId"] != "cat_1" {
			t.Errorf("expected categoryId cat_1, got %v", data["categoryId"])
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/api/transactions",
			`{"amount":12500,"type":"transfer","categoryId":"cat_1","date":"2024-03-10T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/api/transactions",
			`{"amount":0,"type":"expense","categoryId":"cat_1","date":"2024-03-10T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown category", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(int64, models.TransactionType, string, time.Time, string) (*models.Transaction, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/api/transactions",
			`{"amount":12500,"type":"expense","categoryId":"missing","date":"2024-03-10T00:00:00Z"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		var got services.TransactionFilter
		svc := &mockTransactionService{
			listTransactionsFn: func(filter services.TransactionFilter) ([]models.Transaction, error) {
				got = filter
				return []models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/api/transactions?q=rent&type=expense&categoryId=cat_1&from=2024-03-01&to=2024-03-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Query != "rent" || got.Type != "expense" || got.CategoryID != "cat_1" {
			t.Errorf("unexpected filter %+v", got)
		}
		if got.From == nil || got.To == nil {
			t.Fatal("expected date window to be parsed")
		}
		if want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !got.From.Equal(want) {
			t.Errorf("expected from %v, got %v", want, got.From)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/api/transactions?from=March", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("partial body produces partial patch", func(t *testing.T) {
		var got services.TransactionPatch
		svc := &mockTransactionService{
			updateTransactionFn: func(id string, patch services.TransactionPatch) (*models.Transaction, error) {
				got = patch
				return &models.Transaction{ID: id}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/api/transactions/txn_1", `{"amount":7500}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Amount == nil || *got.Amount != 7500 {
			t.Errorf("expected amount pointer 7500, got %v", got.Amount)
		}
		if got.Type != nil || got.CategoryID != nil || got.Date != nil || got.Description != nil {
			t.Errorf("expected untouched fields to stay nil, got %+v", got)
		}
	})

	t.Run("returns 404 on unknown id", func(t *testing.T) {
		svc := &mockTransactionService{
			updateTransactionFn: func(string, services.TransactionPatch) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/api/transactions/missing", `{"amount":7500}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetSummary(t *testing.T) {
	svc := &mockTransactionService{
		summaryFn: func(from, to *time.Time) (*models.DashboardSummary, error) {
			return &models.DashboardSummary{Balance: 250000, Income: 300000, Expenses: 50000}, nil
		},
	}
	r := setupTransactionRouter(NewTransactionHandler(svc))

	rec := doRequest(r, "GET", "/api/summary", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := dataObject(t, parseJSON(t, rec))
	if data["balance"].(float64) != 250000 {
		t.Errorf("expected balance 250000, got %v", data["balance"])
	}
}
