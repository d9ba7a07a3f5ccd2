package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/paycycle/internal/models"
)

const memberColumns = "id, household_id, display_name, payday_day, active, created_at"

// GetHousehold retrieves a household by ID.
func (s *SQLiteStore) GetHousehold(ctx context.Context, householdID string) (*models.Household, error) {
	h := &models.Household{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM households WHERE id = ?",
		householdID,
	).Scan(&h.ID, &h.Name, &h.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", noRows(err, "household %s", householdID))
	}
	return h, nil
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	m := &models.Member{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id = ?",
		memberID,
	).Scan(&m.ID, &m.HouseholdID, &m.DisplayName, &m.PaydayDay, &m.Active, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", noRows(err, "member %s", memberID))
	}
	return m, nil
}

// ListMembersByHousehold retrieves all members of a household, oldest first.
func (s *SQLiteStore) ListMembersByHousehold(ctx context.Context, householdID string) ([]*models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE household_id = ? ORDER BY created_at, id",
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		m := &models.Member{}
		if err := rows.Scan(&m.ID, &m.HouseholdID, &m.DisplayName, &m.PaydayDay, &m.Active, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}
