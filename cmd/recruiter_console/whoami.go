package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user := a.sess.Identity()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}

	fmt.Printf("email: %s\nrole:  %s\n", user.Email, user.Role)
	if user.CompanyID != 0 {
		fmt.Printf("company: %d\n", user.CompanyID)
	}
	return nil
}
