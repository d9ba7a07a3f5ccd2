package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/paycycle/internal/models"
)

// DebtEntry is the viewer's signed share of one unpaid split.
type DebtEntry struct {
	SplitID       string
	TransactionID string

	// YourShare is positive when the viewer owes, negative when the viewer is owed.
	YourShare decimal.Decimal
}

// DebtSummary is the netted balance between a viewer and their partner.
type DebtSummary struct {
	ViewerID  string
	PartnerID string

	// Entries keep the order of the input splits.
	Entries []DebtEntry

	TotalYouOwe     decimal.Decimal
	TotalYouAreOwed decimal.Decimal

	// NetDebt is TotalYouOwe - TotalYouAreOwed.
	// Positive = viewer is a net debtor, Negative = viewer is a net creditor.
	NetDebt decimal.Decimal
}

// HasUnsettled reports whether any unpaid split between the pair exists.
func (d DebtSummary) HasUnsettled() bool {
	return len(d.Entries) > 0
}

// ComputeDebt folds the unpaid splits between viewer and partner into a signed balance.
//
// Paid splits and splits that are not between exactly these two members are
// ignored. With no qualifying splits every total is zero.
func ComputeDebt(splits []models.SharedExpenseSplit, viewerID, partnerID string) (DebtSummary, error) {
	if viewerID == "" || partnerID == "" {
		return DebtSummary{}, models.Validationf("viewer and partner are required")
	}
	if viewerID == partnerID {
		return DebtSummary{}, models.Validationf("viewer and partner must differ")
	}

	summary := DebtSummary{
		ViewerID:        viewerID,
		PartnerID:       partnerID,
		TotalYouOwe:     decimal.Zero,
		TotalYouAreOwed: decimal.Zero,
	}

	for i := range splits {
		s := &splits[i]
		if s.IsPaid || !s.Involves(viewerID, partnerID) {
			continue
		}

		share := s.SplitAmount
		if s.OwerUserID == viewerID {
			summary.TotalYouOwe = summary.TotalYouOwe.Add(share)
		} else {
			share = share.Neg()
			summary.TotalYouAreOwed = summary.TotalYouAreOwed.Add(s.SplitAmount)
		}

		summary.Entries = append(summary.Entries, DebtEntry{
			SplitID:       s.ID,
			TransactionID: s.TransactionID,
			YourShare:     share,
		})
	}

	summary.NetDebt = summary.TotalYouOwe.Sub(summary.TotalYouAreOwed)
	return summary, nil
}

// SplitIDs returns the IDs of every split in the summary.
func (d DebtSummary) SplitIDs() []string {
	ids := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		ids[i] = e.SplitID
	}
	return ids
}
