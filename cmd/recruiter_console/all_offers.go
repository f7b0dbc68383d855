package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/views"
)

var allOffersCmd = &cobra.Command{
	Use:   "all-offers",
	Short: "List every visible job offer",
	RunE:  runAllOffers,
}

func init() {
	rootCmd.AddCommand(allOffersCmd)
}

func runAllOffers(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	view := views.NewAllOffers(a.api)
	view.Load(context.Background())
	if err := a.finish(view.Err); err != nil {
		return err
	}

	if len(view.Offers) == 0 {
		a.printer.PrintEmpty("job offers")
		return nil
	}
	for i := range view.Offers {
		a.printer.PrintOffer(&view.Offers[i], nil)
	}
	return nil
}
