package service

import (
	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/pkg/api"
)

func toAPIPeriod(p models.BudgetPeriod) api.Period {
	return api.Period{
		Start:         models.FormatDate(p.Start),
		End:           models.FormatDate(p.End),
		DaysRemaining: p.DaysRemaining,
		ResetsOn:      models.FormatDate(p.ResetsOn),
	}
}

func toAPISpend(t calculator.SpendTotals) api.Spend {
	out := api.Spend{
		PeriodStart:    models.FormatDate(t.PeriodStart),
		PeriodEnd:      models.FormatDate(t.PeriodEnd),
		Categories:     make([]api.CategorySpend, len(t.PerCategory)),
		Groups:         make([]api.GroupSpend, len(t.PerGroup)),
		TotalAllocated: t.TotalAllocated,
		TotalSpent:     t.TotalSpent,
		Unbudgeted:     t.Unbudgeted,
	}
	for i, c := range t.PerCategory {
		out.Categories[i] = api.CategorySpend{
			CategoryID:    c.CategoryID,
			CategoryGroup: c.CategoryGroup,
			Allocated:     c.Allocated,
			Spent:         c.Spent,
		}
	}
	for i, g := range t.PerGroup {
		out.Groups[i] = api.GroupSpend{Group: g.Group, Allocated: g.Allocated, Spent: g.Spent}
	}
	return out
}

func toAPIDebt(d calculator.DebtSummary) api.Debt {
	out := api.Debt{
		PartnerID:       d.PartnerID,
		Entries:         make([]api.DebtEntry, len(d.Entries)),
		TotalYouOwe:     d.TotalYouOwe,
		TotalYouAreOwed: d.TotalYouAreOwed,
		NetDebt:         d.NetDebt,
		HasUnsettled:    d.HasUnsettled(),
	}
	for i, e := range d.Entries {
		out.Entries[i] = api.DebtEntry{SplitID: e.SplitID, TransactionID: e.TransactionID, YourShare: e.YourShare}
	}
	return out
}

func toAPISettlement(s *models.Settlement) api.Settlement {
	covered := s.CoveredSplitIDs
	if covered == nil {
		covered = []string{}
	}
	return api.Settlement{
		ID:              s.ID,
		HouseholdID:     s.HouseholdID,
		PayerID:         s.PayerUserID,
		ReceiverID:      s.ReceiverUserID,
		Amount:          s.Amount,
		CategoryID:      s.CategoryID,
		CoveredSplitIDs: covered,
		CreatedAt:       s.CreatedAt,
	}
}

func toAPITransaction(t *models.Transaction) api.Transaction {
	return api.Transaction{
		ID:          t.ID,
		MemberID:    t.MemberID,
		AccountID:   t.AccountID,
		CategoryID:  t.CategoryID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Date:        models.FormatDate(t.Date),
		Description: t.Description,
	}
}

func toAPISplit(s *models.SharedExpenseSplit) *api.Split {
	if s == nil {
		return nil
	}
	return &api.Split{
		ID:            s.ID,
		TransactionID: s.TransactionID,
		OwerID:        s.OwerUserID,
		OwedToID:      s.OwedToUserID,
		Amount:        s.SplitAmount,
		IsPaid:        s.IsPaid,
	}
}
