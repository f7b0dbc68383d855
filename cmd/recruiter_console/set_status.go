package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/types"
	"github.com/jonathan/recruiter-console/internal/views"
)

var (
	setStatusOfferID       int64
	setStatusApplicationID int64
	setStatusValue         string
)

var setStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Change an application's status (recruiters and admins)",
	Long:  "Changes an application's status, addressed either by job offer (--offer, the board flow; for admins with no matching application this creates one) or by application id (--application, the dashboard flow).",
	RunE:  runSetStatus,
}

func init() {
	setStatusCmd.Flags().Int64Var(&setStatusOfferID, "offer", 0, "Job offer id whose application to update")
	setStatusCmd.Flags().Int64Var(&setStatusApplicationID, "application", 0, "Application id to update")
	setStatusCmd.Flags().StringVar(&setStatusValue, "status", "", "New status: PENDING, UNDER_REVIEW, INTERVIEW, ACCEPTED, REJECTED or WITHDRAWN")
	setStatusCmd.MarkFlagsOneRequired("offer", "application")
	setStatusCmd.MarkFlagsMutuallyExclusive("offer", "application")
	_ = setStatusCmd.MarkFlagRequired("status")
	rootCmd.AddCommand(setStatusCmd)
}

func runSetStatus(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()
	status := types.ApplicationStatus(setStatusValue)

	if setStatusApplicationID != 0 {
		dash := views.NewRecruiterDashboard(a.sess, a.api, a.nav)
		dash.Load(ctx)
		if err := a.finish(dash.Err); err != nil {
			return err
		}
		dash.SetStatus(ctx, setStatusApplicationID, status)
		if err := a.finish(dash.Err); err != nil {
			return err
		}
		fmt.Printf("application %d is now %s\n", setStatusApplicationID, status)
		return nil
	}

	board := views.NewBoard(a.sess, a.api, a.nav)
	board.Load(ctx)
	if board.ApplicationsErr != "" {
		return a.finish(board.ApplicationsErr)
	}
	board.SetStatus(ctx, setStatusOfferID, status)
	if err := a.finish(board.Err); err != nil {
		return err
	}
	fmt.Printf("status for job offer %d set to %s\n", setStatusOfferID, status)
	return nil
}
