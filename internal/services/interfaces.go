package services

import (
	"time"

	"fintrack/internal/models"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	UpdateCategory(id, name string) (*models.Category, error)
	DeleteCategory(id string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
// Zero values mean "no filter"; Type and CategoryID also treat the literal
// "all" as unfiltered to match the query contract.
type TransactionFilter struct {
	Query      string
	Type       string
	CategoryID string
	From       *time.Time
	To         *time.Time
}

// TransactionPatch carries the partial fields of a transaction update.
type TransactionPatch struct {
	Amount      *int64
	Type        *models.TransactionType
	CategoryID  *string
	Date        *time.Time
	Description *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(amount int64, txType models.TransactionType, categoryID string, date time.Time, description string) (*models.Transaction, error)
	ListTransactions(filter TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(id string, patch TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(id string) error
	Summary(from, to *time.Time) (*models.DashboardSummary, error)
}

// CommitmentPatch carries the partial fields of a commitment update.
// Status is deliberately absent: it only changes through the pay operation.
type CommitmentPatch struct {
	Name       *string
	Amount     *int64
	CategoryID *string
	DueDate    *time.Time
	Recurrence *models.Recurrence
}

// PayReceipt is the result of paying a commitment: the emitted expense
// transaction and the advanced (or settled) commitment.
type PayReceipt struct {
	Transaction models.Transaction `json:"transaction"`
	Commitment  models.Commitment  `json:"commitment"`
}

// CommitmentServicer defines the contract for commitment-related business logic.
type CommitmentServicer interface {
	CreateCommitment(name string, amount int64, categoryID string, dueDate time.Time, recurrence models.Recurrence) (*models.Commitment, error)
	ListCommitments(now time.Time) ([]models.Commitment, error)
	UpdateCommitment(id string, patch CommitmentPatch, now time.Time) (*models.Commitment, error)
	DeleteCommitment(id string) error
	PayCommitment(id string, now time.Time) (*PayReceipt, error)
}

// EmiPatch carries the partial fields of a borrowing update. Derived
// schedule fields are never patched directly; they are recomputed from the
// updated inputs.
type EmiPatch struct {
	Name         *string
	Principal    *int64
	InterestRate *float64
	Tenure       *int
	InterestType *models.InterestType
}

// EmiServicer defines the contract for EMI borrowing business logic.
type EmiServicer interface {
	CreateEmi(name string, principal int64, interestRate float64, tenure int, interestType models.InterestType) (*models.EmiBorrowing, error)
	ListEmis() ([]models.EmiBorrowing, error)
	UpdateEmi(id string, patch EmiPatch) (*models.EmiBorrowing, error)
	DeleteEmi(id string) error
}

// GoalPatch carries the partial fields of a goal update.
type GoalPatch struct {
	Name         *string
	TargetAmount *int64
	Deadline     *time.Time
}

// ContributionReceipt is the result of a goal contribution: the emitted
// savings transaction and the incremented goal.
type ContributionReceipt struct {
	Transaction models.Transaction `json:"transaction"`
	Goal        models.Goal        `json:"goal"`
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(name string, targetAmount int64, deadline time.Time) (*models.Goal, error)
	ListGoals() ([]models.Goal, error)
	UpdateGoal(id string, patch GoalPatch) (*models.Goal, error)
	DeleteGoal(id string) error
	Contribute(id string, amount int64, now time.Time) (*ContributionReceipt, error)
}
