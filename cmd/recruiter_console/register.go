package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/types"
	"github.com/jonathan/recruiter-console/internal/views"
)

var (
	registerEmail      string
	registerPassword   string
	registerFirstName  string
	registerLastName   string
	registerPhone      string
	registerRole       string
	registerSkills     []string
	registerExperience string
	registerCompanyIDs []int64
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (min 6 characters)")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number (optional)")
	registerCmd.Flags().StringVar(&registerRole, "role", string(types.RoleRecruiter), "Role: CANDIDATE or RECRUITER")
	registerCmd.Flags().StringSliceVar(&registerSkills, "skill", nil, "Skill (repeatable)")
	registerCmd.Flags().StringVar(&registerExperience, "experience", "", "Experience summary (optional)")
	registerCmd.Flags().Int64SliceVar(&registerCompanyIDs, "company-id", nil, "Company id (repeatable, recruiters only)")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	form := views.NewRegisterForm(a.sess, a.api, a.nav)
	form.Submit(context.Background(), &types.RegisterRequest{
		Email:      registerEmail,
		Password:   registerPassword,
		FirstName:  registerFirstName,
		LastName:   registerLastName,
		Phone:      registerPhone,
		Role:       types.Role(registerRole),
		Skills:     registerSkills,
		Experience: registerExperience,
		CompanyIDs: registerCompanyIDs,
	})
	if err := a.finish(form.Err); err != nil {
		return err
	}

	user := a.sess.Identity()
	fmt.Printf("registered and logged in as %s (%s)\n", user.Email, user.Role)
	return nil
}
