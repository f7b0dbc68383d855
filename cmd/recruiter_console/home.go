package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/types"
	"github.com/jonathan/recruiter-console/internal/views"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the job offer board for the current role",
	Long:  "Shows the job offers visible to the current viewer (recruiters see their own, everyone else sees all) with the actions available on each, derived from the viewer's applications.",
	RunE:  runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

func runHome(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	board := views.NewBoard(a.sess, a.api, a.nav)
	board.Load(context.Background())

	a.printer.PrintError(board.OffersErr)
	a.printer.PrintError(board.ApplicationsErr)

	if len(board.Offers) == 0 && board.OffersErr == "" {
		a.printer.PrintEmpty("job offers")
	}

	role := a.sess.Role()
	for i := range board.Offers {
		offer := &board.Offers[i]
		var actions []string

		switch role {
		case types.RoleCandidate:
			if board.CanApply(offer.ID) {
				actions = append(actions, "apply")
			}
			if board.CanWithdraw(offer.ID) {
				actions = append(actions, "withdraw")
			}
		case types.RoleRecruiter, types.RoleAdmin:
			if board.CanChangeStatus(offer.ID) {
				actions = append(actions, "set-status")
			}
			if board.CanDeleteOffer(offer.ID) {
				actions = append(actions, "delete-offer")
			}
		}

		if app := board.ApplicationFor(offer.ID); app != nil {
			actions = append(actions, fmt.Sprintf("application #%d %s", app.ID, app.Status))
		}

		a.printer.PrintOffer(offer, actions)
	}

	if board.OffersErr != "" || board.ApplicationsErr != "" {
		return fmt.Errorf("board loaded with errors")
	}
	return nil
}
