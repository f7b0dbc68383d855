package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/views"
)

var (
	withdrawOfferID       int64
	withdrawApplicationID int64
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw a pending application (candidates)",
	Long:  "Withdraws either the application matched to a job offer (--offer, the board flow) or a specific application by id (--application, the dashboard flow).",
	RunE:  runWithdraw,
}

func init() {
	withdrawCmd.Flags().Int64Var(&withdrawOfferID, "offer", 0, "Job offer id whose application to withdraw")
	withdrawCmd.Flags().Int64Var(&withdrawApplicationID, "application", 0, "Application id to withdraw")
	withdrawCmd.MarkFlagsOneRequired("offer", "application")
	withdrawCmd.MarkFlagsMutuallyExclusive("offer", "application")
	rootCmd.AddCommand(withdrawCmd)
}

func runWithdraw(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if withdrawApplicationID != 0 {
		dash := views.NewCandidateDashboard(a.sess, a.api, a.nav)
		dash.Load(ctx)
		if err := a.finish(dash.Err); err != nil {
			return err
		}
		dash.Withdraw(ctx, withdrawApplicationID)
		if err := a.finish(dash.Err); err != nil {
			return err
		}
		fmt.Printf("withdrew application %d\n", withdrawApplicationID)
		return nil
	}

	board := views.NewBoard(a.sess, a.api, a.nav)
	board.Load(ctx)
	if board.ApplicationsErr != "" {
		return a.finish(board.ApplicationsErr)
	}
	board.Withdraw(ctx, withdrawOfferID)
	if err := a.finish(board.Err); err != nil {
		return err
	}
	fmt.Printf("withdrew application for job offer %d\n", withdrawOfferID)
	return nil
}
