package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/models"
)

func periodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Show the budget period for a payday",
		Long: `Compute the budget period that contains a date for the given payday.
Use --payday -1 for "last day of the month".`,
		Example: "  paycycle period --payday 25 --today 2026-02-08",
		RunE:    runPeriod,
	}

	cmd.Flags().Int("payday", 1, "payday (1-31, or -1 for the last day of the month)")
	cmd.Flags().String("today", "", "date to evaluate, YYYY-MM-DD (default: today)")
	return cmd
}

func runPeriod(cmd *cobra.Command, _ []string) error {
	payday, _ := cmd.Flags().GetInt("payday")
	todayFlag, _ := cmd.Flags().GetString("today")

	today := models.Day(time.Now())
	if todayFlag != "" {
		d, err := models.ParseDate(todayFlag)
		if err != nil {
			return err
		}
		today = d
	}

	period, err := calculator.ComputePeriod(payday, today)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Period:     %s to %s\n", models.FormatDate(period.Start), models.FormatDate(period.End))
	fmt.Fprintf(out, "Days left:  %d\n", period.DaysRemaining)
	fmt.Fprintf(out, "Resets on:  %s\n", models.FormatDate(period.ResetsOn))
	return nil
}
