package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/types"
	"github.com/jonathan/recruiter-console/internal/views"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	form := views.NewLoginForm(a.sess, a.api, a.nav)
	form.Submit(context.Background(), &types.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err := a.finish(form.Err); err != nil {
		return err
	}

	user := a.sess.Identity()
	fmt.Printf("logged in as %s (%s)\n", user.Email, user.Role)
	return nil
}
