// Package client provides a typed Go client for the FinTrack REST API and an
// in-memory state store with optimistic updates for UI code.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// APIError is a failure reported by the server through the error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the FinTrack API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient injects a custom *http.Client (timeouts, transports, test doubles).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do sends a request and decodes the enveloped response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// --- categories ---

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/api/categories", body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	var category models.Category
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPut, "/api/categories/"+id, body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil)
}

// --- transactions ---

// TransactionFilter holds the optional query parameters of the transaction list.
type TransactionFilter struct {
	Query      string
	Type       string
	CategoryID string
	From       *time.Time
	To         *time.Time
}

func (f TransactionFilter) encode() string {
	values := url.Values{}
	if f.Query != "" {
		values.Set("q", f.Query)
	}
	if f.Type != "" {
		values.Set("type", f.Type)
	}
	if f.CategoryID != "" {
		values.Set("categoryId", f.CategoryID)
	}
	if f.From != nil {
		values.Set("from", f.From.Format(time.RFC3339))
	}
	if f.To != nil {
		values.Set("to", f.To.Format(time.RFC3339))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// TransactionInput holds the fields of a new transaction.
type TransactionInput struct {
	Amount      int64                  `json:"amount"`
	Type        models.TransactionType `json:"type"`
	CategoryID  string                 `json:"categoryId"`
	Date        time.Time              `json:"date"`
	Description string                 `json:"description,omitempty"`
}

// TransactionPatch holds the partial fields of a transaction update.
// Nil fields are omitted from the request body.
type TransactionPatch struct {
	Amount      *int64                  `json:"amount,omitempty"`
	Type        *models.TransactionType `json:"type,omitempty"`
	CategoryID  *string                 `json:"categoryId,omitempty"`
	Date        *time.Time              `json:"date,omitempty"`
	Description *string                 `json:"description,omitempty"`
}

// ListTransactions fetches transactions matching the filter, newest first.
func (c *Client) ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions"+filter.encode(), nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction records a transaction.
func (c *Client) CreateTransaction(ctx context.Context, input TransactionInput) (*models.Transaction, error) {
	var txn models.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", input, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransaction applies a partial update to a transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (*models.Transaction, error) {
	var txn models.Transaction
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+id, patch, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// DeleteTransaction deletes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+id, nil, nil)
}

// Summary fetches the dashboard aggregation over an optional date window.
func (c *Client) Summary(ctx context.Context, from, to *time.Time) (*models.DashboardSummary, error) {
	values := url.Values{}
	if from != nil {
		values.Set("from", from.Format(time.RFC3339))
	}
	if to != nil {
		values.Set("to", to.Format(time.RFC3339))
	}
	path := "/api/summary"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var summary models.DashboardSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// --- commitments ---

// CommitmentInput holds the fields of a new commitment.
type CommitmentInput struct {
	Name       string            `json:"name"`
	Amount     int64             `json:"amount"`
	CategoryID string            `json:"categoryId"`
	DueDate    time.Time         `json:"dueDate"`
	Recurrence models.Recurrence `json:"recurrence"`
}

// CommitmentPatch holds the partial fields of a commitment update.
type CommitmentPatch struct {
	Name       *string            `json:"name,omitempty"`
	Amount     *int64             `json:"amount,omitempty"`
	CategoryID *string            `json:"categoryId,omitempty"`
	DueDate    *time.Time         `json:"dueDate,omitempty"`
	Recurrence *models.Recurrence `json:"recurrence,omitempty"`
}

// ListCommitments fetches all commitments sorted by due date.
func (c *Client) ListCommitments(ctx context.Context) ([]models.Commitment, error) {
	var commitments []models.Commitment
	if err := c.do(ctx, http.MethodGet, "/api/commitments", nil, &commitments); err != nil {
		return nil, err
	}
	return commitments, nil
}

// CreateCommitment creates a commitment.
func (c *Client) CreateCommitment(ctx context.Context, input CommitmentInput) (*models.Commitment, error) {
	var commitment models.Commitment
	if err := c.do(ctx, http.MethodPost, "/api/commitments", input, &commitment); err != nil {
		return nil, err
	}
	return &commitment, nil
}

// UpdateCommitment applies a partial update to a commitment.
func (c *Client) UpdateCommitment(ctx context.Context, id string, patch CommitmentPatch) (*models.Commitment, error) {
	var commitment models.Commitment
	if err := c.do(ctx, http.MethodPut, "/api/commitments/"+id, patch, &commitment); err != nil {
		return nil, err
	}
	return &commitment, nil
}

// DeleteCommitment deletes a commitment.
func (c *Client) DeleteCommitment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/commitments/"+id, nil, nil)
}

// PayCommitment settles a commitment and returns the emitted expense and
// the advanced commitment.
func (c *Client) PayCommitment(ctx context.Context, id string) (*services.PayReceipt, error) {
	var receipt services.PayReceipt
	if err := c.do(ctx, http.MethodPost, "/api/commitments/"+id+"/pay", nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// --- EMI borrowings ---

// EmiInput holds the loan fields of a new borrowing.
type EmiInput struct {
	Name         string              `json:"name"`
	Principal    int64               `json:"principal"`
	InterestRate float64             `json:"interestRate"`
	Tenure       int                 `json:"tenure"`
	InterestType models.InterestType `json:"interestType"`
}

// EmiPatch holds the partial fields of a borrowing update.
type EmiPatch struct {
	Name         *string              `json:"name,omitempty"`
	Principal    *int64               `json:"principal,omitempty"`
	InterestRate *float64             `json:"interestRate,omitempty"`
	Tenure       *int                 `json:"tenure,omitempty"`
	InterestType *models.InterestType `json:"interestType,omitempty"`
}

// ListEmis fetches all borrowings.
func (c *Client) ListEmis(ctx context.Context) ([]models.EmiBorrowing, error) {
	var borrowings []models.EmiBorrowing
	if err := c.do(ctx, http.MethodGet, "/api/emis", nil, &borrowings); err != nil {
		return nil, err
	}
	return borrowings, nil
}

// CreateEmi records a borrowing; the server computes the schedule fields.
func (c *Client) CreateEmi(ctx context.Context, input EmiInput) (*models.EmiBorrowing, error) {
	var borrowing models.EmiBorrowing
	if err := c.do(ctx, http.MethodPost, "/api/emis", input, &borrowing); err != nil {
		return nil, err
	}
	return &borrowing, nil
}

// UpdateEmi applies a partial update to a borrowing.
func (c *Client) UpdateEmi(ctx context.Context, id string, patch EmiPatch) (*models.EmiBorrowing, error) {
	var borrowing models.EmiBorrowing
	if err := c.do(ctx, http.MethodPut, "/api/emis/"+id, patch, &borrowing); err != nil {
		return nil, err
	}
	return &borrowing, nil
}

// DeleteEmi deletes a borrowing.
func (c *Client) DeleteEmi(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/emis/"+id, nil, nil)
}

// --- goals ---

// GoalInput holds the fields of a new goal.
type GoalInput struct {
	Name         string    `json:"name"`
	TargetAmount int64     `json:"targetAmount"`
	Deadline     time.Time `json:"deadline"`
}

// GoalPatch holds the partial fields of a goal update.
type GoalPatch struct {
	Name         *string    `json:"name,omitempty"`
	TargetAmount *int64     `json:"targetAmount,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// ListGoals fetches all goals sorted by deadline.
func (c *Client) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := c.do(ctx, http.MethodGet, "/api/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoal creates a goal.
func (c *Client) CreateGoal(ctx context.Context, input GoalInput) (*models.Goal, error) {
	var goal models.Goal
	if err := c.do(ctx, http.MethodPost, "/api/goals", input, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal applies a partial update to a goal.
func (c *Client) UpdateGoal(ctx context.Context, id string, patch GoalPatch) (*models.Goal, error) {
	var goal models.Goal
	if err := c.do(ctx, http.MethodPut, "/api/goals/"+id, patch, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal deletes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/goals/"+id, nil, nil)
}

// Contribute records a contribution towards a goal and returns the emitted
// savings expense and the incremented goal.
func (c *Client) Contribute(ctx context.Context, id string, amount int64) (*services.ContributionReceipt, error) {
	var receipt services.ContributionReceipt
	body := map[string]int64{"amount": amount}
	if err := c.do(ctx, http.MethodPost, "/api/goals/"+id+"/contribute", body, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
