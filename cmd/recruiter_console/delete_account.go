package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/views"
)

var deleteAccountYes bool

var deleteAccountCmd = &cobra.Command{
	Use:   "delete-account",
	Short: "Delete your account and clear the session",
	RunE:  runDeleteAccount,
}

func init() {
	deleteAccountCmd.Flags().BoolVar(&deleteAccountYes, "yes", false, "Confirm the deletion")
	rootCmd.AddCommand(deleteAccountCmd)
}

func runDeleteAccount(_ *cobra.Command, _ []string) error {
	if !deleteAccountYes {
		return fmt.Errorf("account deletion is permanent; re-run with --yes to confirm")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	account := views.NewAccount(a.sess, a.api, a.nav)
	account.DeleteSelf(context.Background())
	if err := a.finish(account.Err); err != nil {
		return err
	}

	fmt.Println("account deleted")
	return nil
}
