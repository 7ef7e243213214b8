package services

import (
	"errors"
	"sort"
	"strings"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store *store.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(s *store.Store) CategoryServicer {
	return &categoryService{store: s}
}

// CreateCategory creates a new category with a unique display name.
func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	existing, err := s.store.Categories.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
		}
	}

	category := &models.Category{Name: name}
	if err := s.store.Categories.Create(category); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// ListCategories retrieves all categories sorted by name.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	categories, err := s.store.Categories.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sort.Slice(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})
	return categories, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(id string) (*models.Category, error) {
	category, err := s.store.Categories.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// UpdateCategory renames an existing category.
func (s *categoryService) UpdateCategory(id, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	existing, err := s.store.Categories.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, c := range existing {
		if c.ID != id && strings.EqualFold(c.Name, name) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
		}
	}

	category, err := s.store.Categories.Patch(id, map[string]any{"name": name})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// DeleteCategory removes a category unless transactions still reference it.
func (s *categoryService) DeleteCategory(id string) error {
	exists, err := s.store.Categories.Exists(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !exists {
		return apperrors.ErrCategoryNotFound
	}

	transactions, err := s.store.Transactions.List()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, txn := range transactions {
		if txn.CategoryID == id {
			return apperrors.ErrCategoryInUse
		}
	}

	if _, err := s.store.Categories.Delete(id); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
