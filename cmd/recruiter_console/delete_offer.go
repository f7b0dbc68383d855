package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/views"
)

var deleteOfferID int64

var deleteOfferCmd = &cobra.Command{
	Use:   "delete-offer",
	Short: "Delete a job offer with no applications (recruiters)",
	RunE:  runDeleteOffer,
}

func init() {
	deleteOfferCmd.Flags().Int64Var(&deleteOfferID, "offer", 0, "Job offer id")
	_ = deleteOfferCmd.MarkFlagRequired("offer")
	rootCmd.AddCommand(deleteOfferCmd)
}

func runDeleteOffer(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	board := views.NewBoard(a.sess, a.api, a.nav)
	board.Load(ctx)
	if board.ApplicationsErr != "" {
		return a.finish(board.ApplicationsErr)
	}

	board.DeleteOffer(ctx, deleteOfferID)
	if err := a.finish(board.Err); err != nil {
		return err
	}

	fmt.Printf("deleted job offer %d\n", deleteOfferID)
	return nil
}
