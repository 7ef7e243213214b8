package services

import (
	"errors"
	"sort"
	"strings"

	"fintrack/internal/emi"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// emiService handles EMI borrowing business logic. The schedule fields
// (emi, totalInterest, totalAmount) are always computed server-side from
// the loan inputs; client-supplied values are ignored.
type emiService struct {
	store *store.Store
}

// NewEmiService creates a new EmiServicer.
func NewEmiService(s *store.Store) EmiServicer {
	return &emiService{store: s}
}

// CreateEmi records a new borrowing with its computed repayment schedule.
func (s *emiService) CreateEmi(
	name string,
	principal int64,
	interestRate float64,
	tenure int,
	interestType models.InterestType,
) (*models.EmiBorrowing, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "borrowing name is required")
	}
	if principal <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal must be positive")
	}
	if interestRate < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must not be negative")
	}
	if tenure <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tenure must be positive")
	}

	schedule := emi.Calculate(string(interestType), principal, interestRate, tenure)
	borrowing := &models.EmiBorrowing{
		Name:          name,
		Principal:     principal,
		InterestRate:  interestRate,
		Tenure:        tenure,
		InterestType:  interestType,
		Emi:           schedule.Emi,
		TotalInterest: schedule.TotalInterest,
		TotalAmount:   schedule.TotalAmount,
	}
	if err := s.store.Emis.Create(borrowing); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return borrowing, nil
}

// ListEmis retrieves all borrowings sorted by name.
func (s *emiService) ListEmis() ([]models.EmiBorrowing, error) {
	borrowings, err := s.store.Emis.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sort.Slice(borrowings, func(i, j int) bool {
		return strings.ToLower(borrowings[i].Name) < strings.ToLower(borrowings[j].Name)
	})
	return borrowings, nil
}

// UpdateEmi applies a partial update and recomputes the repayment schedule
// from the merged loan inputs.
func (s *emiService) UpdateEmi(id string, patch EmiPatch) (*models.EmiBorrowing, error) {
	current, err := s.store.Emis.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrEmiNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "borrowing name is required")
		}
		current.Name = *patch.Name
		fields["name"] = *patch.Name
	}
	if patch.Principal != nil {
		if *patch.Principal <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal must be positive")
		}
		current.Principal = *patch.Principal
		fields["principal"] = *patch.Principal
	}
	if patch.InterestRate != nil {
		if *patch.InterestRate < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must not be negative")
		}
		current.InterestRate = *patch.InterestRate
		fields["interestRate"] = *patch.InterestRate
	}
	if patch.Tenure != nil {
		if *patch.Tenure <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tenure must be positive")
		}
		current.Tenure = *patch.Tenure
		fields["tenure"] = *patch.Tenure
	}
	if patch.InterestType != nil {
		if !patch.InterestType.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid interest type")
		}
		current.InterestType = *patch.InterestType
		fields["interestType"] = *patch.InterestType
	}

	schedule := emi.Calculate(string(current.InterestType), current.Principal, current.InterestRate, current.Tenure)
	fields["emi"] = schedule.Emi
	fields["totalInterest"] = schedule.TotalInterest
	fields["totalAmount"] = schedule.TotalAmount

	borrowing, err := s.store.Emis.Patch(id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrEmiNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return borrowing, nil
}

// DeleteEmi removes a borrowing by ID.
func (s *emiService) DeleteEmi(id string) error {
	existed, err := s.store.Emis.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !existed {
		return apperrors.ErrEmiNotFound
	}
	return nil
}
