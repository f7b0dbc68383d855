package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/views"
)

var candidateDashboardCmd = &cobra.Command{
	Use:   "candidate-dashboard",
	Short: "List your job applications (candidates)",
	RunE:  runCandidateDashboard,
}

func init() {
	rootCmd.AddCommand(candidateDashboardCmd)
}

func runCandidateDashboard(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	dash := views.NewCandidateDashboard(a.sess, a.api, a.nav)
	dash.Load(context.Background())
	if err := a.finish(dash.Err); err != nil {
		return err
	}

	if len(dash.Applications) == 0 {
		a.printer.PrintEmpty("applications")
		return nil
	}
	for i := range dash.Applications {
		a.printer.PrintApplication(&dash.Applications[i])
	}
	return nil
}
