package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/models"
)

// HouseholdDebt is the debt between a viewer and the one other active member.
type HouseholdDebt struct {
	Partner *models.Member
	Summary calculator.DebtSummary
}

// ComputeDebt folds the live unpaid splits between viewer and partner.
func (l *Ledger) ComputeDebt(ctx context.Context, viewerID, partnerID string) (calculator.DebtSummary, error) {
	// Reject bad pairs before touching the store.
	if _, err := calculator.ComputeDebt(nil, viewerID, partnerID); err != nil {
		return calculator.DebtSummary{}, err
	}
	for _, id := range []string{viewerID, partnerID} {
		if _, err := l.store.GetMember(ctx, id); err != nil {
			return calculator.DebtSummary{}, err
		}
	}

	splits, err := l.store.ListUnpaidSplitsBetween(ctx, viewerID, partnerID)
	if err != nil {
		return calculator.DebtSummary{}, fmt.Errorf("failed to load splits: %w", err)
	}
	return calculator.ComputeDebt(values(splits), viewerID, partnerID)
}

// CalculateHouseholdDebt resolves the viewer's single other active household
// member and computes the debt for that pair.
//
// It returns nil without error when there is no such partner, either because
// the viewer lives alone or because more than one other member is active.
func (l *Ledger) CalculateHouseholdDebt(ctx context.Context, householdID, viewerID string) (*HouseholdDebt, error) {
	partner, err := l.partner(ctx, householdID, viewerID)
	if err != nil || partner == nil {
		return nil, err
	}

	summary, err := l.ComputeDebt(ctx, viewerID, partner.ID)
	if err != nil {
		return nil, err
	}
	return &HouseholdDebt{Partner: partner, Summary: summary}, nil
}

func (l *Ledger) partner(ctx context.Context, householdID, viewerID string) (*models.Member, error) {
	if householdID == "" || viewerID == "" {
		return nil, models.Validationf("household and viewer are required")
	}
	if _, err := l.store.GetHousehold(ctx, householdID); err != nil {
		return nil, err
	}

	members, err := l.store.ListMembersByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	var (
		isMember bool
		others   []*models.Member
	)
	for _, m := range members {
		switch {
		case m.ID == viewerID:
			isMember = true
		case m.Active:
			others = append(others, m)
		}
	}
	if !isMember {
		return nil, models.NotFoundf("member %s in household %s", viewerID, householdID)
	}
	if len(others) != 1 {
		return nil, nil
	}
	return others[0], nil
}
