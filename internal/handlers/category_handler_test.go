package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn  func(name string) (*models.Category, error)
	listCategoriesFn  func() ([]models.Category, error)
	getCategoryByIDFn func(id string) (*models.Category, error)
	updateCategoryFn  func(id, name string) (*models.Category, error)
	deleteCategoryFn  func(id string) error
}

func (m *mockCategoryService) CreateCategory(name string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(name)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) ListCategories() ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn()
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(id string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(id)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(id, name string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(id, name)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(id string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(id)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/categories", handler.CreateCategory)
	r.GET("/api/categories", handler.GetCategories)
	r.PUT("/api/categories/:id", handler.UpdateCategory)
	r.DELETE("/api/categories/:id", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(name string) (*models.Category, error) {
				return &models.Category{ID: "cat_1", Name: name}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "POST", "/api/categories", `{"name":"Groceries"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		data := dataObject(t, parseJSON(t, rec))
		if data["name"] != "Groceries" {
			t.Errorf("expected Groceries, got %v", data["name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/api/categories", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorEnvelope(t, parseJSON(t, rec))
	})

	t.Run("returns 400 on duplicate name", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(string) (*models.Category, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "POST", "/api/categories", `{"name":"Groceries"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	svc := &mockCategoryService{
		listCategoriesFn: func() ([]models.Category, error) {
			return []models.Category{{ID: "cat_1", Name: "Groceries"}, {ID: "cat_2", Name: "Rent"}}, nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(svc))

	rec := doRequest(r, "GET", "/api/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := dataArray(t, parseJSON(t, rec))
	if len(data) != 2 {
		t.Errorf("expected 2 categories, got %d", len(data))
	}
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockCategoryService{
			updateCategoryFn: func(id, name string) (*models.Category, error) {
				return &models.Category{ID: id, Name: name}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "PUT", "/api/categories/cat_1", `{"name":"Dining"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := dataObject(t, parseJSON(t, rec))
		if data["name"] != "Dining" {
			t.Errorf("expected Dining, got %v", data["name"])
		}
	})

	t.Run("returns 400 when name is absent", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "PUT", "/api/categories/cat_1", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown id", func(t *testing.T) {
		svc := &mockCategoryService{
			updateCategoryFn: func(string, string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "PUT", "/api/categories/missing", `{"name":"Dining"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorEnvelope(t, parseJSON(t, rec))
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "DELETE", "/api/categories/cat_1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 409 when category is in use", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteCategoryFn: func(string) error { return apperrors.ErrCategoryInUse },
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "DELETE", "/api/categories/cat_1", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorEnvelope(t, parseJSON(t, rec))
	})
}
