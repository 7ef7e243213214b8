package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name       string
		due        time.Time
		recurrence Recurrence
		want       time.Time
	}{
		{"daily", date(2024, 3, 15), RecurrenceDaily, date(2024, 3, 16)},
		{"weekly", date(2024, 3, 15), RecurrenceWeekly, date(2024, 3, 22)},
		{"monthly", date(2024, 3, 15), RecurrenceMonthly, date(2024, 4, 15)},
		{"monthly_end_of_january_clamps", date(2024, 1, 31), RecurrenceMonthly, date(2024, 2, 29)},
		{"monthly_end_of_january_non_leap", date(2023, 1, 31), RecurrenceMonthly, date(2023, 2, 28)},
		{"monthly_across_year", date(2023, 12, 10), RecurrenceMonthly, date(2024, 1, 10)},
		{"yearly", date(2024, 3, 15), RecurrenceYearly, date(2025, 3, 15)},
		{"yearly_leap_day_clamps", date(2024, 2, 29), RecurrenceYearly, date(2025, 2, 28)},
		{"none_leaves_date", date(2024, 3, 15), RecurrenceNone, date(2024, 3, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDueDate(tt.due, tt.recurrence)
			if !got.Equal(tt.want) {
				t.Errorf("NextDueDate(%v, %s) = %v, want %v", tt.due, tt.recurrence, got, tt.want)
			}
		})
	}
}

func TestNextDueDate_AnchorsToPreviousDueDate(t *testing.T) {
	// A commitment overdue by several months still advances exactly one
	// period from its last scheduled date.
	due := date(2024, 1, 5)
	got := NextDueDate(due, RecurrenceMonthly)
	if want := date(2024, 2, 5); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := date(2024, 6, 1)

	tests := []struct {
		name   string
		status CommitmentStatus
		due    time.Time
		want   CommitmentStatus
	}{
		{"upcoming_future_due", CommitmentStatusUpcoming, date(2024, 6, 10), CommitmentStatusUpcoming},
		{"upcoming_past_due_reads_overdue", CommitmentStatusUpcoming, date(2024, 5, 20), CommitmentStatusOverdue},
		{"paid_stays_paid", CommitmentStatusPaid, date(2024, 5, 20), CommitmentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Commitment{Status: tt.status, DueDate: tt.due}
			if got := c.EffectiveStatus(now); got != tt.want {
				t.Errorf("EffectiveStatus = %s, want %s", got, tt.want)
			}
		})
	}
}
