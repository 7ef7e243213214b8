package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry.
// Amount is always in minor currency units (cents).
type Transaction struct {
	ID          string          `json:"id"`
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"categoryId"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// EntityID returns the record key.
func (t *Transaction) EntityID() string { return t.ID }

// SetEntityID assigns the record key.
func (t *Transaction) SetEntityID(id string) { t.ID = id }
