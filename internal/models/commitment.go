package models

import "time"

// Recurrence represents how often a commitment repeats
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Valid reports whether r is one of the known recurrence values.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// CommitmentStatus represents the lifecycle state of a commitment.
// Only "upcoming" and "paid" are ever stored; "overdue" is a derived
// read-time view of an upcoming commitment whose due date has passed.
type CommitmentStatus string

const (
	CommitmentStatusUpcoming CommitmentStatus = "upcoming"
	CommitmentStatusPaid     CommitmentStatus = "paid"
	CommitmentStatusOverdue  CommitmentStatus = "overdue"
)

// Commitment is a one-time or recurring scheduled expense obligation
// (bill, subscription). Amount is in minor currency units (cents).
type Commitment struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Amount     int64            `json:"amount"`
	CategoryID string           `json:"categoryId"`
	DueDate    time.Time        `json:"dueDate"`
	Recurrence Recurrence       `json:"recurrence"`
	Status     CommitmentStatus `json:"status"`
}

// EntityID returns the record key.
func (c *Commitment) EntityID() string { return c.ID }

// SetEntityID assigns the record key.
func (c *Commitment) SetEntityID(id string) { c.ID = id }

// EffectiveStatus derives the status visible to clients at read time.
// An unpaid commitment whose due date has passed reads as overdue.
func (c *Commitment) EffectiveStatus(now time.Time) CommitmentStatus {
	if c.Status == CommitmentStatusPaid {
		return CommitmentStatusPaid
	}
	if c.DueDate.Before(now) {
		return CommitmentStatusOverdue
	}
	return CommitmentStatusUpcoming
}

// NextDueDate advances a due date by exactly one recurrence unit.
// The anchor is the previous due date, not the current time: a commitment
// overdue by more than one period keeps its original schedule.
// Monthly and yearly advances clamp the day of month so Jan 31 + 1 month
// lands on the last day of February instead of spilling into March.
func NextDueDate(due time.Time, recurrence Recurrence) time.Time {
	switch recurrence {
	case RecurrenceDaily:
		return due.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		return due.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		return addMonthsClamped(due, 1)
	case RecurrenceYearly:
		return addMonthsClamped(due, 12)
	default:
		return due
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}
