package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-console/internal/types"
	"github.com/jonathan/recruiter-console/internal/views"
)

var (
	createOfferTitle       string
	createOfferDescription string
	createOfferSalary      float64
	createOfferLocation    string
	createOfferType        string
	createOfferCompanyID   int64
	createOfferList        bool
)

var createOfferCmd = &cobra.Command{
	Use:   "create-offer",
	Short: "Create a job offer (recruiters)",
	RunE:  runCreateOffer,
}

func init() {
	createOfferCmd.Flags().StringVar(&createOfferTitle, "title", "", "Offer title")
	createOfferCmd.Flags().StringVar(&createOfferDescription, "description", "", "Offer description")
	createOfferCmd.Flags().Float64Var(&createOfferSalary, "salary", 0, "Salary")
	createOfferCmd.Flags().StringVar(&createOfferLocation, "location", "", "Location")
	createOfferCmd.Flags().StringVar(&createOfferType, "type", string(types.EmploymentFullTime), "Employment type: FULL_TIME, PART_TIME or FREELANCE")
	createOfferCmd.Flags().Int64Var(&createOfferCompanyID, "company", 0, "Company id (must be one of your companies)")
	createOfferCmd.Flags().BoolVar(&createOfferList, "list-companies", false, "Only list your companies and exit")
	rootCmd.AddCommand(createOfferCmd)
}

func runCreateOffer(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	form := views.NewOfferForm(a.sess, a.api, a.nav)
	form.Load(ctx)
	if err := a.finish(form.Err); err != nil {
		return err
	}

	if createOfferList {
		a.printer.PrintCompanies(form.Companies)
		return nil
	}

	form.Submit(ctx, &types.CreateJobOfferRequest{
		Title:          createOfferTitle,
		Description:    createOfferDescription,
		Salary:         createOfferSalary,
		Location:       createOfferLocation,
		EmploymentType: types.EmploymentType(createOfferType),
		CompanyID:      createOfferCompanyID,
	})
	if err := a.finish(form.Err); err != nil {
		return err
	}

	fmt.Printf("created job offer %d: %s\n", form.Created.ID, form.Created.Title)
	return nil
}
