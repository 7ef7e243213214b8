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

// --- mock commitment service ---

type mockCommitmentService struct {
	createCommitmentFn func(name string, amount int64, categoryID string, dueDate time.Time, recurrence models.Recurrence) (*models.Commitment, error)
	listCommitmentsFn  func(now time.Time) ([]models.Commitment, error)
	updateCommitmentFn func(id string, patch services.CommitmentPatch, now time.Time) (*models.Commitment, error)
	deleteCommitmentFn func(id string) error
	payCommitmentFn    func(id string, now time.Time) (*services.PayReceipt, error)
}

func (m *mockCommitmentService) CreateCommitment(name string, amount int64, categoryID string, dueDate time.Time, recurrence models.Recurrence) (*models.Commitment, error) {
	if m.createCommitmentFn != nil {
		return m.createCommitmentFn(name, amount, categoryID, dueDate, recurrence)
	}
	return &models.Commitment{}, nil
}

func (m *mockCommitmentService) ListCommitments(now time.Time) ([]models.Commitment, error) {
	if m.listCommitmentsFn != nil {
		return m.listCommitmentsFn(now)
	}
	return []models.Commitment{}, nil
}

func (m *mockCommitmentService) UpdateCommitment(id string, patch services.CommitmentPatch, now time.Time) (*models.Commitment, error) {
	if m.updateCommitmentFn != nil {
		return m.updateCommitmentFn(id, patch, now)
	}
	return &models.Commitment{}, nil
}

func (m *mockCommitmentService) DeleteCommitment(id string) error {
	if m.deleteCommitmentFn != nil {
		return m.deleteCommitmentFn(id)
	}
	return nil
}

func (m *mockCommitmentService) PayCommitment(id string, now time.Time) (*services.PayReceipt, error) {
	if m.payCommitmentFn != nil {
		return m.payCommitmentFn(id, now)
	}
	return &services.PayReceipt{}, nil
}

var _ services.CommitmentServicer = (*mockCommitmentService)(nil)

func setupCommitmentRouter(handler *CommitmentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/commitments", handler.CreateCommitment)
	r.GET("/api/commitments", handler.GetCommitments)
	r.PUT("/api/commitments/:id", handler.UpdateCommitment)
	r.DELETE("/api/commitments/:id", handler.DeleteCommitment)
	r.POST("/api/commitments/:id/pay", handler.PayCommitment)
	return r
}

func TestCommitmentHandler_CreateCommitment(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockCommitmentService{
			createCommitmentFn: func(name string, amount int64, categoryID string, dueDate time.Time, recurrence models.Recurrence) (*models.Commitment, error) {
				return &models.Commitment{
					ID:         "com_1",
					Name:       name,
					Amount:     amount,
					CategoryID: categoryID,
					DueDate:    dueDate,
					Recurrence: recurrence,
					Status:     models.CommitmentStatusUpcoming,
				}, nil
			},
		}
		r := setupCommitmentRouter(NewCommitmentHandler(svc))

		rec := doRequest(r, "POST", "/api/commitments",
			`{"name":"Rent","amount":180000,"categoryId":"cat_1","dueDate":"2024-04-01T00:00:00Z","recurrence":"monthly"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		data := dataObject(t, parseJSON(t, rec))
		if data["status"] != "upcoming" {
			t.Errorf("expected status upcoming, got %v", data["status"])
		}
	})

	t.Run("returns 400 on invalid recurrence", func(t *testing.T) {
		r := setupCommitmentRouter(NewCommitmentHandler(&mockCommitmentService{}))

		rec := doRequest(r, "POST", "/api/commitments",
			`{"name":"Rent","amount":180000,"categoryId":"cat_1","dueDate":"2024-04-01T00:00:00Z","recurrence":"fortnightly"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCommitmentHandler_PayCommitment(t *testing.T) {
	t.Run("returns receipt on success", func(t *testing.T) {
		svc := &mockCommitmentService{
			payCommitmentFn: func(id string, now time.Time) (*services.PayReceipt, error) {
				return &services.PayReceipt{
					Transaction: models.Transaction{ID: "txn_9", Description: "Paid: Rent"},
					Commitment:  models.Commitment{ID: id, Status: models.CommitmentStatusUpcoming},
				}, nil
			},
		}
		r := setupCommitmentRouter(NewCommitmentHandler(svc))

		rec := doRequest(r, "POST", "/api/commitments/com_1/pay", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := dataObject(t, parseJSON(t, rec))
		txn := data["transaction"].(map[string]interface{})
		if txn["description"] != "Paid: Rent" {
			t.Errorf("expected pay description, got %v", txn["description"])
		}
	})

	t.Run("returns 409 when already paid", func(t *testing.T) {
		svc := &mockCommitmentService{
			payCommitmentFn: func(string, time.Time) (*services.PayReceipt, error) {
				return nil, apperrors.ErrCommitmentAlreadyPaid
			},
		}
		r := setupCommitmentRouter(NewCommitmentHandler(svc))

		rec := doRequest(r, "POST", "/api/commitments/com_1/pay", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorEnvelope(t, parseJSON(t, rec))
	})
}

func TestCommitmentHandler_UpdateCommitment(t *testing.T) {
	t.Run("partial body produces partial patch", func(t *testing.T) {
		var got services.CommitmentPatch
		svc := &mockCommitmentService{
			updateCommitmentFn: func(id string, patch services.CommitmentPatch, now time.Time) (*models.Commitment, error) {
				got = patch
				return &models.Commitment{ID: id}, nil
			},
		}
		r := setupCommitmentRouter(NewCommitmentHandler(svc))

		rec := doRequest(r, "PUT", "/api/commitments/com_1", `{"recurrence":"yearly"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Recurrence == nil || *got.Recurrence != models.RecurrenceYearly {
			t.Errorf("expected recurrence pointer yearly, got %v", got.Recurrence)
		}
		if got.Name != nil || got.Amount != nil || got.DueDate != nil {
			t.Errorf("expected untouched fields to stay nil, got %+v", got)
		}
	})

	t.Run("returns 404 on unknown id", func(t *testing.T) {
		svc := &mockCommitmentService{
			updateCommitmentFn: func(string, services.CommitmentPatch, time.Time) (*models.Commitment, error) {
				return nil, apperrors.ErrCommitmentNotFound
			},
		}
		r := setupCommitmentRouter(NewCommitmentHandler(svc))

		rec := doRequest(r, "PUT", "/api/commitments/missing", `{"amount":100}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
