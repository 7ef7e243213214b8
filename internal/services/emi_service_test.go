package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestCreateEmi(t *testing.T) {
	t.Run("computes_schedule_simple", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewEmiService(s)

		// 100000 at 12% over 12 months, simple interest.
		b, err := svc.CreateEmi("Car Loan", 100000, 12, 12, models.InterestTypeSimple)
		testutil.AssertNoError(t, err)

		if b.ID == "" {
			t.Fatal("expected non-empty borrowing ID")
		}
		if b.TotalInterest != 12000 {
			t.Errorf("expected total interest 12000, got %d", b.TotalInterest)
		}
		if b.TotalAmount != 112000 {
			t.Errorf("expected total amount 112000, got %d", b.TotalAmount)
		}
		if b.Emi != 9333 {
			t.Errorf("expected emi 9333, got %d", b.Emi)
		}
	})

	t.Run("invalid_inputs", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewEmiService(s)

		cases := []struct {
			name         string
			principal    int64
			rate         float64
			tenure       int
			interestType models.InterestType
		}{
			{"", 100000, 12, 12, models.InterestTypeSimple},
			{"Loan", 0, 12, 12, models.InterestTypeSimple},
			{"Loan", 100000, -1, 12, models.InterestTypeSimple},
			{"Loan", 100000, 12, 0, models.InterestTypeSimple},
		}
		for _, c := range cases {
			_, err := svc.CreateEmi(c.name, c.principal, c.rate, c.tenure, c.interestType)
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
	})
}

func TestUpdateEmi(t *testing.T) {
	t.Run("recomputes_schedule_from_merged_inputs", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewEmiService(s)

		b, err := svc.CreateEmi("Car Loan", 100000, 12, 12, models.InterestTypeSimple)
		testutil.AssertNoError(t, err)

		// Doubling the principal alone must double the schedule.
		principal := int64(200000)
		updated, err := svc.UpdateEmi(b.ID, EmiPatch{Principal: &principal})
		testutil.AssertNoError(t, err)

		if updated.TotalInterest != 24000 {
			t.Errorf("expected total interest 24000, got %d", updated.TotalInterest)
		}
		if updated.TotalAmount != 224000 {
			t.Errorf("expected total amount 224000, got %d", updated.TotalAmount)
		}
		if updated.Tenure != 12 || updated.InterestRate != 12 {
			t.Errorf("untouched inputs must survive the patch, got %+v", updated)
		}
	})

	t.Run("interest_type_switch_recomputes", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewEmiService(s)

		b, err := svc.CreateEmi("Car Loan", 100000, 12, 12, models.InterestTypeSimple)
		testutil.AssertNoError(t, err)

		compound := models.InterestTypeCompound
		updated, err := svc.UpdateEmi(b.ID, EmiPatch{InterestType: &compound})
		testutil.AssertNoError(t, err)

		if updated.Emi != 8885 {
			t.Errorf("expected compound emi 8885, got %d", updated.Emi)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		svc := NewEmiService(s)

		name := "Loan"
		_, err := svc.UpdateEmi("missing", EmiPatch{Name: &name})
		testutil.AssertAppError(t, err, "EMI_NOT_FOUND")
	})
}

func TestDeleteEmi(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewEmiService(s)

	b, err := svc.CreateEmi("Car Loan", 100000, 12, 12, models.InterestTypeSimple)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteEmi(b.ID))
	testutil.AssertAppError(t, svc.DeleteEmi(b.ID), "EMI_NOT_FOUND")
}

func TestListEmis(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewEmiService(s)

	for _, name := range []string{"Phone", "bike", "Car"} {
		_, err := svc.CreateEmi(name, 100000, 10, 12, models.InterestTypeSimple)
		testutil.AssertNoError(t, err)
	}

	borrowings, err := svc.ListEmis()
	testutil.AssertNoError(t, err)

	want := []string{"bike", "Car", "Phone"}
	if len(borrowings) != len(want) {
		t.Fatalf("expected %d borrowings, got %d", len(want), len(borrowings))
	}
	for i, name := range want {
		if borrowings[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, borrowings[i].Name)
		}
	}
}
