package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/recruiter-console/internal/types"
)

func TestPrintOffer(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOffer(&types.JobOffer{
		ID:             5,
		Title:          "Backend Engineer",
		Description:    "Build APIs",
		Salary:         90000,
		Location:       "Lisbon",
		EmploymentType: types.EmploymentFullTime,
		CompanyID:      3,
		CompanyName:    "Acme",
	}, []string{"apply"})

	out := buf.String()
	assert.Contains(t, out, "#5 Backend Engineer")
	assert.Contains(t, out, "3- Acme")
	assert.Contains(t, out, "Salary:   90000")
	assert.Contains(t, out, "FULL_TIME")
	assert.Contains(t, out, "Actions:  apply")
}

func TestPrintOfferWithoutCompanyNameFallsBackToID(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOffer(&types.JobOffer{ID: 2, Title: "Analyst", CompanyID: 9}, nil)

	assert.Contains(t, buf.String(), "Company ID 9")
	assert.NotContains(t, buf.String(), "Actions:")
}

func TestPrintApplicationCandidateView(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintApplication(&types.JobApplication{
		ID:            7,
		JobOfferID:    3,
		JobOfferTitle: "Backend Engineer",
		Status:        types.StatusPending,
		CoverLetter:   "I would like to apply.",
		AppliedAt:     types.Timestamp{Time: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
	})

	out := buf.String()
	assert.Contains(t, out, "Application #7")
	assert.Contains(t, out, "3- Backend Engineer")
	assert.Contains(t, out, "Applied:  2026-08-01")
	assert.Contains(t, out, "Status:   PENDING")
	// no enriched candidate block without candidate fields
	assert.NotContains(t, out, "Candidate:")
}

func TestPrintApplicationRecruiterViewShowsCandidateBlock(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintApplication(&types.JobApplication{
		ID:                 7,
		JobOfferID:         3,
		Status:             types.StatusUnderReview,
		CandidateFirstName: "Jane",
		CandidateLastName:  "Doe",
		CandidateEmail:     "jane@example.com",
		CandidateSkills:    []string{"go", "sql"},
	})

	out := buf.String()
	assert.Contains(t, out, "Unknown Job")
	assert.Contains(t, out, "Candidate: Jane Doe")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "go, sql")
}

func TestPrintCompanies(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanies([]types.Company{{ID: 3, Name: "Acme"}, {ID: 4, Name: "Globex"}})
	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Globex")

	buf.Reset()
	p.PrintCompanies(nil)
	assert.Equal(t, "No companies found.\n", buf.String())
}

func TestPrintErrorAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintError("")
	assert.Empty(t, buf.String())

	p.PrintError("boom")
	assert.Equal(t, "error: boom\n", buf.String())

	buf.Reset()
	p.PrintEmpty("job offers")
	assert.Equal(t, "No job offers found.\n", buf.String())
}
