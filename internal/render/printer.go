// Package render draws offers, applications and companies as plain text
// cards and tables. No business logic lives here.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/recruiter-console/internal/types"
)

const boxWidth = 64

// Printer writes formatted output to a writer.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintError writes a user-visible error line.
//
//nolint:errcheck
func (p *Printer) PrintError(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintf(p.out, "error: %s\n", msg)
}

// PrintOffer draws one job offer card. The enablement lines reflect the
// actions the current viewer may take on it.
func (p *Printer) PrintOffer(offer *types.JobOffer, actions []string) {
	var sb strings.Builder

	company := offer.CompanyName
	if company == "" {
		company = fmt.Sprintf("Company ID %d", offer.CompanyID)
	}
	sb.WriteString(fmt.Sprintf("Company:  %d- %s\n", offer.CompanyID, company))
	if offer.Description != "" {
		sb.WriteString(fmt.Sprintf("About:    %s\n", offer.Description))
	}
	sb.WriteString(fmt.Sprintf("Salary:   %.0f\n", offer.Salary))
	sb.WriteString(fmt.Sprintf("Location: %s\n", offer.Location))
	sb.WriteString(fmt.Sprintf("Type:     %s", offer.EmploymentType))
	if len(actions) > 0 {
		sb.WriteString(fmt.Sprintf("\nActions:  %s", strings.Join(actions, ", ")))
	}

	p.printBox(fmt.Sprintf("#%d %s", offer.ID, offer.Title), sb.String())
}

// PrintApplication draws one application card. Enriched candidate fields
// show up only when the feed supplied them.
func (p *Printer) PrintApplication(app *types.JobApplication) {
	var sb strings.Builder

	title := app.JobOfferTitle
	if title == "" {
		title = "Unknown Job"
	}
	sb.WriteString(fmt.Sprintf("Offer:    %d- %s\n", app.JobOfferID, title))
	if app.CompanyID != 0 || app.CompanyName != "" {
		company := app.CompanyName
		if company == "" {
			company = "Unknown Company"
		}
		sb.WriteString(fmt.Sprintf("Company:  %d- %s\n", app.CompanyID, company))
	}

	if app.CandidateEmail != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s %s\n", app.CandidateFirstName, app.CandidateLastName))
		sb.WriteString(fmt.Sprintf("Email:     %s\n", app.CandidateEmail))
		if app.CandidatePhone != "" {
			sb.WriteString(fmt.Sprintf("Phone:     %s\n", app.CandidatePhone))
		}
		if app.CandidateResumeFile != "" {
			sb.WriteString(fmt.Sprintf("Resume:    %s\n", app.CandidateResumeFile))
		}
		if len(app.CandidateSkills) > 0 {
			sb.WriteString(fmt.Sprintf("Skills:    %s\n", strings.Join(app.CandidateSkills, ", ")))
		}
		if app.CandidateExperience != "" {
			sb.WriteString(fmt.Sprintf("Experience: %s\n", app.CandidateExperience))
		}
	}

	if app.CoverLetter != "" {
		sb.WriteString(fmt.Sprintf("Cover Letter: %s\n", app.CoverLetter))
	}
	if !app.AppliedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Applied:  %s\n", app.AppliedAt.Format(time.DateOnly)))
	}
	sb.WriteString(fmt.Sprintf("Status:   %s", app.Status))

	p.printBox(fmt.Sprintf("Application #%d", app.ID), sb.String())
}

// PrintCompanies draws the company table.
//
//nolint:errcheck
func (p *Printer) PrintCompanies(companies []types.Company) {
	if len(companies) == 0 {
		fmt.Fprintln(p.out, "No companies found.")
		return
	}
	fmt.Fprintf(p.out, "%-6s %s\n", "ID", "NAME")
	for _, c := range companies {
		fmt.Fprintf(p.out, "%-6d %s\n", c.ID, c.Name)
	}
}

// PrintEmpty writes a placeholder line for an empty collection.
//
//nolint:errcheck
func (p *Printer) PrintEmpty(what string) {
	fmt.Fprintf(p.out, "No %s found.\n", what)
}
