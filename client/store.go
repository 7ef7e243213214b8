package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/insights"
	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

// State is the client-side mirror of server data. Slices are owned by the
// store; callers get deep copies via Snapshot.
type State struct {
	Transactions []models.Transaction
	Categories   []models.Category
	Commitments  []models.Commitment
	Emis         []models.EmiBorrowing
	Goals        []models.Goal
	Summary      models.DashboardSummary
}

// clone returns a deep copy of the state.
func (s *State) clone() *State {
	c := &State{
		Transactions: make([]models.Transaction, len(s.Transactions)),
		Categories:   make([]models.Category, len(s.Categories)),
		Commitments:  make([]models.Commitment, len(s.Commitments)),
		Emis:         make([]models.EmiBorrowing, len(s.Emis)),
		Goals:        make([]models.Goal, len(s.Goals)),
		Summary:      s.Summary,
	}
	copy(c.Transactions, s.Transactions)
	copy(c.Categories, s.Categories)
	copy(c.Commitments, s.Commitments)
	copy(c.Emis, s.Emis)
	copy(c.Goals, s.Goals)
	return c
}

// Store mirrors server state in memory and applies mutations optimistically:
// each action tentatively updates local state, then commits against the API.
// On failure the exact pre-action state is restored and the error returned;
// there are no retries.
type Store struct {
	client *Client

	mu    sync.Mutex
	state State
}

// NewStore creates a Store backed by the given API client.
func NewStore(c *Client) *Store {
	return &Store{client: c}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.clone()
}

// mutate runs the three-phase optimistic sequence: snapshot the state, apply
// the tentative change, then commit against the server. On commit failure the
// snapshot is restored verbatim; on success the reconcile function replaces
// the tentative entries with the server's canonical ones.
func (s *Store) mutate(ctx context.Context, apply func(*State), commit func(ctx context.Context) (func(*State), error)) error {
	s.mu.Lock()
	snapshot := s.state.clone()
	if apply != nil {
		apply(&s.state)
	}
	s.mu.Unlock()

	reconcile, err := commit(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = *snapshot
		return err
	}
	if reconcile != nil {
		reconcile(&s.state)
	}
	return nil
}

// recalcSummary recomputes the all-time summary from local transactions so
// optimistic entries are reflected immediately.
func recalcSummary(s *State) {
	var summary models.DashboardSummary
	for _, txn := range s.Transactions {
		switch txn.Type {
		case models.TransactionTypeIncome:
			summary.Income += txn.Amount
		case models.TransactionTypeExpense:
			summary.Expenses += txn.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expenses
	s.Summary = summary
}

// FetchDashboard loads transactions, categories, summary, and goals
// concurrently and replaces the local mirror.
func (s *Store) FetchDashboard(ctx context.Context) error {
	var (
		transactions []models.Transaction
		categories   []models.Category
		goals        []models.Goal
		summary      *models.DashboardSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.client.ListTransactions(gctx, TransactionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.client.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.client.ListGoals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.client.Summary(gctx, nil, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Transactions = transactions
	s.state.Categories = categories
	s.state.Goals = goals
	s.state.Summary = *summary
	return nil
}

// FetchCommitments loads commitments and replaces the local mirror.
func (s *Store) FetchCommitments(ctx context.Context) error {
	commitments, err := s.client.ListCommitments(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Commitments = commitments
	return nil
}

// FetchEmis loads EMI borrowings and replaces the local mirror.
func (s *Store) FetchEmis(ctx context.Context) error {
	borrowings, err := s.client.ListEmis(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Emis = borrowings
	return nil
}

// AddCategory optimistically appends a category and commits it.
func (s *Store) AddCategory(ctx context.Context, name string) error {
	tempID := "tmp_" + uuid.New()

	return s.mutate(ctx,
		func(st *State) {
			st.Categories = append(st.Categories, models.Category{ID: tempID, Name: name})
		},
		func(ctx context.Context) (func(*State), error) {
			created, err := s.client.CreateCategory(ctx, name)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Categories {
					if st.Categories[i].ID == tempID {
						st.Categories[i] = *created
						break
					}
				}
			}, nil
		},
	)
}

// UpdateCategory optimistically renames a category and commits it.
func (s *Store) UpdateCategory(ctx context.Context, id, name string) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Categories {
				if st.Categories[i].ID == id {
					st.Categories[i].Name = name
					break
				}
			}
		},
		func(ctx context.Context) (func(*State), error) {
			updated, err := s.client.UpdateCategory(ctx, id, name)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Categories {
					if st.Categories[i].ID == id {
						st.Categories[i] = *updated
						break
					}
				}
			}, nil
		},
	)
}

// DeleteCategory optimistically removes a category and commits it. The
// server rejects deletion of a category still referenced by transactions,
// which restores the optimistic removal.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Categories {
				if st.Categories[i].ID == id {
					st.Categories = append(st.Categories[:i], st.Categories[i+1:]...)
					break
				}
			}
		},
		func(ctx context.Context) (func(*State), error) {
			if err := s.client.DeleteCategory(ctx, id); err != nil {
				return nil, err
			}
			return nil, nil
		},
	)
}

// AddTransaction optimistically prepends a transaction and commits it.
func (s *Store) AddTransaction(ctx context.Context, input TransactionInput) error {
	tempID := "tmp_" + uuid.New()
	optimistic := models.Transaction{
		ID:          tempID,
		Amount:      input.Amount,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Date:        input.Date,
		Description: input.Description,
	}

	return s.mutate(ctx,
		func(st *State) {
			st.Transactions = append([]models.Transaction{optimistic}, st.Transactions...)
			recalcSummary(st)
		},
		func(ctx context.Context) (func(*State), error) {
			created, err := s.client.CreateTransaction(ctx, input)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Transactions {
					if st.Transactions[i].ID == tempID {
						st.Transactions[i] = *created
						break
					}
				}
				recalcSummary(st)
			}, nil
		},
	)
}

// UpdateTransaction optimistically patches a transaction and commits it.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Transactions {
				if st.Transactions[i].ID != id {
					continue
				}
				if patch.Amount != nil {
					st.Transactions[i].Amount = *patch.Amount
				}
				if patch.Type != nil {
					st.Transactions[i].Type = *patch.Type
				}
				if patch.CategoryID != nil {
					st.Transactions[i].CategoryID = *patch.CategoryID
				}
				if patch.Date != nil {
					st.Transactions[i].Date = *patch.Date
				}
				if patch.Description != nil {
					st.Transactions[i].Description = *patch.Description
				}
				break
			}
			recalcSummary(st)
		},
		func(ctx context.Context) (func(*State), error) {
			updated, err := s.client.UpdateTransaction(ctx, id, patch)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Transactions {
					if st.Transactions[i].ID == id {
						st.Transactions[i] = *updated
						break
					}
				}
				recalcSummary(st)
			}, nil
		},
	)
}

// DeleteTransaction optimistically removes a transaction and commits it.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Transactions {
				if st.Transactions[i].ID == id {
					st.Transactions = append(st.Transactions[:i], st.Transactions[i+1:]...)
					break
				}
			}
			recalcSummary(st)
		},
		func(ctx context.Context) (func(*State), error) {
			if err := s.client.DeleteTransaction(ctx, id); err != nil {
				return nil, err
			}
			return nil, nil
		},
	)
}

// AddCommitment optimistically appends a commitment and commits it.
func (s *Store) AddCommitment(ctx context.Context, input CommitmentInput) error {
	tempID := "tmp_" + uuid.New()
	optimistic := models.Commitment{
		ID:         tempID,
		Name:       input.Name,
		Amount:     input.Amount,
		CategoryID: input.CategoryID,
		DueDate:    input.DueDate,
		Recurrence: input.Recurrence,
		Status:     models.CommitmentStatusUpcoming,
	}

	return s.mutate(ctx,
		func(st *State) {
			st.Commitments = append(st.Commitments, optimistic)
		},
		func(ctx context.Context) (func(*State), error) {
			created, err := s.client.CreateCommitment(ctx, input)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Commitments {
					if st.Commitments[i].ID == tempID {
						st.Commitments[i] = *created
						break
					}
				}
			}, nil
		},
	)
}

// UpdateCommitment optimistically patches a commitment and commits it. The
// server response carries the derived overdue state, so reconciliation may
// change the status the optimistic apply left in place.
func (s *Store) UpdateCommitment(ctx context.Context, id string, patch CommitmentPatch) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Commitments {
				if st.Commitments[i].ID != id {
					continue
				}
				if patch.Name != nil {
					st.Commitments[i].Name = *patch.Name
				}
				if patch.Amount != nil {
					st.Commitments[i].Amount = *patch.Amount
				}
				if patch.CategoryID != nil {
					st.Commitments[i].CategoryID = *patch.CategoryID
				}
				if patch.DueDate != nil {
					st.Commitments[i].DueDate = *patch.DueDate
				}
				if patch.Recurrence != nil {
					st.Commitments[i].Recurrence = *patch.Recurrence
				}
				break
			}
		},
		func(ctx context.Context) (func(*State), error) {
			updated, err := s.client.UpdateCommitment(ctx, id, patch)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Commitments {
					if st.Commitments[i].ID == id {
						st.Commitments[i] = *updated
						break
					}
				}
			}, nil
		},
	)
}

// DeleteCommitment optimistically removes a commitment and commits it.
func (s *Store) DeleteCommitment(ctx context.Context, id string) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Commitments {
				if st.Commitments[i].ID == id {
					st.Commitments = append(st.Commitments[:i], st.Commitments[i+1:]...)
					break
				}
			}
		},
		func(ctx context.Context) (func(*State), error) {
			if err := s.client.DeleteCommitment(ctx, id); err != nil {
				return nil, err
			}
			return nil, nil
		},
	)
}

// AddEmi optimistically appends a borrowing and commits it. The schedule
// fields (emi, totalInterest, totalAmount) are computed server-side, so the
// optimistic entry carries zeros until reconciliation replaces it.
func (s *Store) AddEmi(ctx context.Context, input EmiInput) error {
	tempID := "tmp_" + uuid.New()
	optimistic := models.EmiBorrowing{
		ID:           tempID,
		Name:         input.Name,
		Principal:    input.Principal,
		InterestRate: input.InterestRate,
		Tenure:       input.Tenure,
		InterestType: input.InterestType,
	}

	return s.mutate(ctx,
		func(st *State) {
			st.Emis = append(st.Emis, optimistic)
		},
		func(ctx context.Context) (func(*State), error) {
			created, err := s.client.CreateEmi(ctx, input)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Emis {
					if st.Emis[i].ID == tempID {
						st.Emis[i] = *created
						break
					}
				}
			}, nil
		},
	)
}

// UpdateEmi optimistically patches a borrowing's inputs and commits it;
// reconciliation brings in the recomputed schedule fields.
func (s *Store) UpdateEmi(ctx context.Context, id string, patch EmiPatch) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Emis {
				if st.Emis[i].ID != id {
					continue
				}
				if patch.Name != nil {
					st.Emis[i].Name = *patch.Name
				}
				if patch.Principal != nil {
					st.Emis[i].Principal = *patch.Principal
				}
				if patch.InterestRate != nil {
					st.Emis[i].InterestRate = *patch.InterestRate
				}
				if patch.Tenure != nil {
					st.Emis[i].Tenure = *patch.Tenure
				}
				if patch.InterestType != nil {
					st.Emis[i].InterestType = *patch.InterestType
				}
				break
			}
		},
		func(ctx context.Context) (func(*State), error) {
			updated, err := s.client.UpdateEmi(ctx, id, patch)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Emis {
					if st.Emis[i].ID == id {
						st.Emis[i] = *updated
						break
					}
				}
			}, nil
		},
	)
}

// DeleteEmi optimistically removes a borrowing and commits it.
func (s *Store) DeleteEmi(ctx context.Context, id string) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Emis {
				if st.Emis[i].ID == id {
					st.Emis = append(st.Emis[:i], st.Emis[i+1:]...)
					break
				}
			}
		},
		func(ctx context.Context) (func(*State), error) {
			if err := s.client.DeleteEmi(ctx, id); err != nil {
				return nil, err
			}
			return nil, nil
		},
	)
}

// AddGoal optimistically appends a goal and commits it.
func (s *Store) AddGoal(ctx context.Context, input GoalInput) error {
	tempID := "tmp_" + uuid.New()
	optimistic := models.Goal{
		ID:           tempID,
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		Deadline:     input.Deadline,
	}

	return s.mutate(ctx,
		func(st *State) {
			st.Goals = append(st.Goals, optimistic)
		},
		func(ctx context.Context) (func(*State), error) {
			created, err := s.client.CreateGoal(ctx, input)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Goals {
					if st.Goals[i].ID == tempID {
						st.Goals[i] = *created
						break
					}
				}
			}, nil
		},
	)
}

// UpdateGoal optimistically patches a goal and commits it.
func (s *Store) UpdateGoal(ctx context.Context, id string, patch GoalPatch) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Goals {
				if st.Goals[i].ID != id {
					continue
				}
				if patch.Name != nil {
					st.Goals[i].Name = *patch.Name
				}
				if patch.TargetAmount != nil {
					st.Goals[i].TargetAmount = *patch.TargetAmount
				}
				if patch.Deadline != nil {
					st.Goals[i].Deadline = *patch.Deadline
				}
				break
			}
		},
		func(ctx context.Context) (func(*State), error) {
			updated, err := s.client.UpdateGoal(ctx, id, patch)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				for i := range st.Goals {
					if st.Goals[i].ID == id {
						st.Goals[i] = *updated
						break
					}
				}
			}, nil
		},
	)
}

// DeleteGoal optimistically removes a goal and commits it.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	return s.mutate(ctx,
		func(st *State) {
			for i := range st.Goals {
				if st.Goals[i].ID == id {
					st.Goals = append(st.Goals[:i], st.Goals[i+1:]...)
					break
				}
			}
		},
		func(ctx context.Context) (func(*State), error) {
			if err := s.client.DeleteGoal(ctx, id); err != nil {
				return nil, err
			}
			return nil, nil
		},
	)
}

// PayCommitment settles a commitment. The result is entirely server-computed
// so no optimistic change is applied; on success the returned transaction and
// commitment are folded into local state.
func (s *Store) PayCommitment(ctx context.Context, id string) error {
	return s.mutate(ctx, nil,
		func(ctx context.Context) (func(*State), error) {
			receipt, err := s.client.PayCommitment(ctx, id)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				st.Transactions = append([]models.Transaction{receipt.Transaction}, st.Transactions...)
				for i := range st.Commitments {
					if st.Commitments[i].ID == id {
						st.Commitments[i] = receipt.Commitment
						break
					}
				}
				recalcSummary(st)
			}, nil
		},
	)
}

// ContributeToGoal contributes to a goal. Like PayCommitment the result is
// server-computed and only reconciled on success.
func (s *Store) ContributeToGoal(ctx context.Context, id string, amount int64) error {
	return s.mutate(ctx, nil,
		func(ctx context.Context) (func(*State), error) {
			receipt, err := s.client.Contribute(ctx, id, amount)
			if err != nil {
				return nil, err
			}
			return func(st *State) {
				st.Transactions = append([]models.Transaction{receipt.Transaction}, st.Transactions...)
				for i := range st.Goals {
					if st.Goals[i].ID == id {
						st.Goals[i] = receipt.Goal
						break
					}
				}
				recalcSummary(st)
			}, nil
		},
	)
}

// Insights derives up to three insights from the current local state.
func (s *Store) Insights() []insights.Insight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insights.Generate(s.state.Transactions, s.state.Categories, s.state.Summary)
}
