package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func debtCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Show the unsettled balance with your household partner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			household, _ := cmd.Flags().GetString("household")
			viewer, _ := cmd.Flags().GetString("member")

			l, store, err := a.openLedger()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			debt, err := l.CalculateHouseholdDebt(cmd.Context(), household, viewer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if debt == nil {
				fmt.Fprintln(out, "No single household partner to compare with.")
				return nil
			}
			if !debt.Summary.HasUnsettled() {
				fmt.Fprintf(out, "No unsettled expenses with %s.\n", debt.Partner.DisplayName)
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SPLIT\tTRANSACTION\tYOUR SHARE")
			for _, e := range debt.Summary.Entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.SplitID, e.TransactionID, e.YourShare.StringFixed(2))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			s := debt.Summary
			fmt.Fprintf(out, "\nYou owe %s: %s\n", debt.Partner.DisplayName, s.TotalYouOwe.StringFixed(2))
			fmt.Fprintf(out, "%s owes you: %s\n", debt.Partner.DisplayName, s.TotalYouAreOwed.StringFixed(2))
			fmt.Fprintf(out, "Net: %s\n", s.NetDebt.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().String("household", "", "household ID")
	cmd.Flags().String("member", "", "your member ID")
	_ = cmd.MarkFlagRequired("household")
	_ = cmd.MarkFlagRequired("member")
	return cmd
}
