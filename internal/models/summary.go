package models

// DashboardSummary aggregates transactions within a date window.
// It is derived on demand and never persisted. Balance = Income - Expenses.
type DashboardSummary struct {
	Balance  int64 `json:"balance"`
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
}
