package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/paycycle/internal/models"
)

const settlementColumns = "id, household_id, payer_id, receiver_id, amount, category_id, created_at"

// GetSettlement retrieves a settlement by ID, with its covered split IDs.
func (s *SQLiteStore) GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error) {
	settlement := &models.Settlement{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+settlementColumns+" FROM settlements WHERE id = ?",
		settlementID,
	).Scan(&settlement.ID, &settlement.HouseholdID, &settlement.PayerUserID, &settlement.ReceiverUserID,
		&settlement.Amount, &settlement.CategoryID, &settlement.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.NotFoundf("settlement %s", settlementID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	covered, err := s.coveredSplits(ctx, []string{settlement.ID})
	if err != nil {
		return nil, err
	}
	settlement.CoveredSplitIDs = covered[settlement.ID]

	return settlement, nil
}

// ListSettlementsByMember retrieves all settlements a member paid or received, newest first.
func (s *SQLiteStore) ListSettlementsByMember(ctx context.Context, memberID string) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+settlementColumns+` FROM settlements
		 WHERE payer_id = ? OR receiver_id = ?
		 ORDER BY created_at DESC, id`,
		memberID, memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by member: %w", err)
	}

	var settlements []*models.Settlement
	var ids []string
	for rows.Next() {
		settlement := &models.Settlement{}
		if err := rows.Scan(&settlement.ID, &settlement.HouseholdID, &settlement.PayerUserID, &settlement.ReceiverUserID,
			&settlement.Amount, &settlement.CategoryID, &settlement.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
		ids = append(ids, settlement.ID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}
	// Release the connection before the follow-up query.
	rows.Close()

	covered, err := s.coveredSplits(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, settlement := range settlements {
		settlement.CoveredSplitIDs = covered[settlement.ID]
	}

	return settlements, nil
}

// coveredSplits maps settlement IDs to the split IDs they cover.
func (s *SQLiteStore) coveredSplits(ctx context.Context, settlementIDs []string) (map[string][]string, error) {
	covered := make(map[string][]string, len(settlementIDs))
	if len(settlementIDs) == 0 {
		return covered, nil
	}

	args := make([]any, len(settlementIDs))
	for i, id := range settlementIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT settlement_id, split_id FROM settlement_splits WHERE settlement_id IN ("+
			placeholders(len(settlementIDs))+") ORDER BY settlement_id, split_id",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get covered splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var settlementID, splitID string
		if err := rows.Scan(&settlementID, &splitID); err != nil {
			return nil, fmt.Errorf("failed to scan covered split: %w", err)
		}
		covered[settlementID] = append(covered[settlementID], splitID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate covered splits: %w", err)
	}
	return covered, nil
}
