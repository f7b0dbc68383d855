package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/views"
)

var recruiterDashboardCmd = &cobra.Command{
	Use:   "recruiter-dashboard",
	Short: "List the applications to your offers (recruiters and admins)",
	RunE:  runRecruiterDashboard,
}

func init() {
	rootCmd.AddCommand(recruiterDashboardCmd)
}

func runRecruiterDashboard(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	dash := views.NewRecruiterDashboard(a.sess, a.api, a.nav)
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
