package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/paycycle/internal/models"
)

// ListCategoryBudgets retrieves a member's category budgets ordered by category.
func (s *SQLiteStore) ListCategoryBudgets(ctx context.Context, memberID string) ([]*models.CategoryBudget, error) {
	return listCategoryBudgets(ctx, s.db, memberID)
}

func listCategoryBudgets(ctx context.Context, q querier, memberID string) ([]*models.CategoryBudget, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, member_id, category_id, category_group, allocated, spent
		 FROM category_budgets WHERE member_id = ? ORDER BY category_id`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list category budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*models.CategoryBudget
	for rows.Next() {
		b := &models.CategoryBudget{}
		if err := rows.Scan(&b.ID, &b.MemberID, &b.CategoryID, &b.CategoryGroup, &b.Allocated, &b.Spent); err != nil {
			return nil, fmt.Errorf("failed to scan category budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category budgets: %w", err)
	}
	return budgets, nil
}

// GetBudgetSummary retrieves a member's stored budget totals.
func (s *SQLiteStore) GetBudgetSummary(ctx context.Context, memberID string) (*models.BudgetSummary, error) {
	sum := &models.BudgetSummary{}
	err := s.db.QueryRowContext(ctx,
		"SELECT member_id, total_allocated, total_spent, updated_at FROM budget_summaries WHERE member_id = ?",
		memberID,
	).Scan(&sum.MemberID, &sum.TotalAllocated, &sum.TotalSpent, &sum.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, models.NotFoundf("budget summary for member %s", memberID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget summary: %w", err)
	}
	return sum, nil
}
