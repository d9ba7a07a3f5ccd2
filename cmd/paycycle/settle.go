package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/paycycle/internal/ledger"
	"github.com/mmynk/paycycle/internal/models"
)

func settleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Record a settlement",
		Long: `Record a settlement between household members.

With --all, the whole net balance between --member and their partner is
settled and every unpaid split is covered. Otherwise --payer, --receiver,
--amount and one or more --split flags name the payment explicitly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			category, _ := cmd.Flags().GetString("category")

			l, store, err := a.openLedger()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var settlement *models.Settlement
			if all {
				household, _ := cmd.Flags().GetString("household")
				member, _ := cmd.Flags().GetString("member")
				settlement, err = l.SettleUp(cmd.Context(), household, member, category)
			} else {
				var req ledger.SettlementRequest
				req, err = settlementRequest(cmd)
				if err == nil {
					req.CategoryID = category
					settlement, err = l.RecordSettlement(cmd.Context(), req)
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded settlement %s: %s paid %s %s (%d splits)\n",
				settlement.ID, settlement.PayerUserID, settlement.ReceiverUserID,
				settlement.Amount.StringFixed(2), len(settlement.CoveredSplitIDs))
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "settle the whole balance with your partner")
	cmd.Flags().String("household", "", "household ID (with --all)")
	cmd.Flags().String("member", "", "your member ID (with --all)")
	cmd.Flags().String("payer", "", "paying member ID")
	cmd.Flags().String("receiver", "", "receiving member ID")
	cmd.Flags().String("amount", "", "amount paid")
	cmd.Flags().StringSlice("split", nil, "covered split ID (repeatable)")
	cmd.Flags().String("category", "settlement", "category to file the settlement under")
	return cmd
}

func settlementRequest(cmd *cobra.Command) (ledger.SettlementRequest, error) {
	payer, _ := cmd.Flags().GetString("payer")
	receiver, _ := cmd.Flags().GetString("receiver")
	amountFlag, _ := cmd.Flags().GetString("amount")
	splits, _ := cmd.Flags().GetStringSlice("split")

	amount, err := decimal.NewFromString(amountFlag)
	if err != nil {
		return ledger.SettlementRequest{}, models.Validationf("invalid amount %q", amountFlag)
	}
	return ledger.SettlementRequest{
		PayerID:         payer,
		ReceiverID:      receiver,
		Amount:          amount,
		CoveredSplitIDs: splits,
	}, nil
}
