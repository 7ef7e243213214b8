// Package insights derives short advisory messages from aggregated
// transaction data. Generation is a pure function of its inputs; every rule
// is evaluated in priority order and at most three qualifying insights are
// returned.
package insights

import (
	"fmt"

	"fintrack/internal/models"
	"fintrack/internal/money"
)

// maxInsights caps how many insights a single generation returns.
const maxInsights = 3

// InsightType classifies the tone of an insight.
type InsightType string

const (
	TypePositive InsightType = "positive"
	TypeWarning  InsightType = "warning"
	TypeInfo     InsightType = "info"
)

// Insight is a single human-readable observation.
type Insight struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        InsightType `json:"type"`
}

// Generate evaluates the insight rules over the given window of
// transactions and returns at most three insights, highest priority first:
// savings potential, high spending alert, top spending category, and a
// ready-to-start prompt when the window is empty.
func Generate(transactions []models.Transaction, categories []models.Category, summary models.DashboardSummary) []Insight {
	var out []Insight

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	if summary.Income > summary.Expenses {
		savings := summary.Income - summary.Expenses
		out = append(out, Insight{
			ID:    "savings-potential",
			Title: "Great Savings Potential!",
			Description: fmt.Sprintf("You've earned %s more than you spent. This is a great opportunity to save or invest.",
				money.FormatCents(savings)),
			Type: TypePositive,
		})
	}

	if summary.Income > 0 && float64(summary.Expenses) > float64(summary.Income)*0.8 {
		// Percentage truncated toward zero, matching the established output.
		percentage := summary.Expenses * 100 / summary.Income
		out = append(out, Insight{
			ID:    "high-expense-ratio",
			Title: "High Spending Alert",
			Description: fmt.Sprintf("Your expenses are %d%% of your income. Keep an eye on your spending to maintain a healthy budget.",
				percentage),
			Type: TypeWarning,
		})
	}

	if name, total, ok := topSpendingCategory(transactions, categoryNames); ok {
		out = append(out, Insight{
			ID:    "top-spending-category",
			Title: "Top Spending Category",
			Description: fmt.Sprintf("Your highest spending was in '%s', totaling %s. Review these expenses for potential savings.",
				name, money.FormatCents(total)),
			Type: TypeInfo,
		})
	}

	if len(transactions) == 0 {
		out = append(out, Insight{
			ID:          "no-transactions",
			Title:       "Ready to Start?",
			Description: "You haven't added any transactions for this period yet. Add your first income or expense to begin tracking.",
			Type:        TypeInfo,
		})
	}

	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

// topSpendingCategory sums expenses per category name and returns the
// largest. Ties break toward the category encountered first in transaction
// order. Transactions referencing an unknown category group under
// "Uncategorized".
func topSpendingCategory(transactions []models.Transaction, categoryNames map[string]string) (string, int64, bool) {
	totals := make(map[string]int64)
	var order []string

	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		name, ok := categoryNames[t.CategoryID]
		if !ok {
			name = "Uncategorized"
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += t.Amount
	}

	if len(order) == 0 {
		return "", 0, false
	}

	top := order[0]
	for _, name := range order[1:] {
		if totals[name] > totals[top] {
			top = name
		}
	}
	return top, totals[top], true
}
