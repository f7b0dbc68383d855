package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/views"
)

var (
	applyOfferID     int64
	applyCoverLetter string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply to a job offer (candidates)",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().Int64Var(&applyOfferID, "offer", 0, "Job offer id")
	applyCmd.Flags().StringVar(&applyCoverLetter, "cover-letter", "", "Cover letter text (optional)")
	_ = applyCmd.MarkFlagRequired("offer")
	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
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

	board.Apply(ctx, applyOfferID, applyCoverLetter)
	if err := a.finish(board.Err); err != nil {
		return err
	}

	fmt.Printf("applied to job offer %d\n", applyOfferID)
	return nil
}
