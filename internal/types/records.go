package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp decodes the backend's timestamps. The server serializes local
// date-times without a zone offset; some feeds carry full RFC 3339. Both
// must decode, since the payload shape only requires a string.
type Timestamp struct {
	time.Time
}

const offsetlessLayout = "2006-01-02T15:04:05"

// UnmarshalJSON accepts RFC 3339 and offset-less ISO 8601 strings. An
// offset-less value is taken as UTC. Empty strings and null leave the
// timestamp zero.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(offsetlessLayout, s)
	if err != nil {
		return fmt.Errorf("unrecognized timestamp %q", s)
	}
	t.Time = parsed
	return nil
}

// UserIdentity is the authenticated identity held by the session store.
// CompanyID is only populated for recruiters that belong to a company.
type UserIdentity struct {
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CompanyID int64  `json:"companyId,omitempty"`
}

// JobOffer is a posting created by a recruiter. Server-owned; the client
// treats it as read-mostly and never invents fields locally.
type JobOffer struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Salary         float64        `json:"salary"`
	Location       string         `json:"location"`
	EmploymentType EmploymentType `json:"employmentType"`
	CompanyID      int64          `json:"companyId"`
	CompanyName    string         `json:"companyName,omitempty"`
}

// JobApplication is a candidate's submission against a job offer.
//
// The recruiter/admin feeds enrich the record with candidate contact and
// skill fields; those stay zero-valued on the candidate's own view.
type JobApplication struct {
	ID          int64             `json:"id"`
	JobOfferID  int64             `json:"jobOfferId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	AppliedAt   Timestamp         `json:"appliedAt"`

	JobOfferTitle string `json:"jobOfferTitle,omitempty"`
	CompanyID     int64  `json:"companyId,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`

	CandidateFirstName  string   `json:"candidateFirstName,omitempty"`
	CandidateLastName   string   `json:"candidateLastName,omitempty"`
	CandidateEmail      string   `json:"candidateEmail,omitempty"`
	CandidatePhone      string   `json:"candidatePhone,omitempty"`
	CandidateResumeFile string   `json:"candidateResumeFile,omitempty"`
	CandidateSkills     []string `json:"candidateSkills,omitempty"`
	CandidateExperience string   `json:"candidateExperience,omitempty"`

	RecruiterID        int64  `json:"recruiterId,omitempty"`
	RecruiterFirstName string `json:"recruiterFirstName,omitempty"`
	RecruiterLastName  string `json:"recruiterLastName,omitempty"`
}

// Company is an employer a recruiter can post offers for.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AuthResponse is the body of a successful register or login call.
type AuthResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CompanyID int64  `json:"companyId,omitempty"`
}

// Identity builds the session identity carried by an auth response.
func (a *AuthResponse) Identity() *UserIdentity {
	return &UserIdentity{Email: a.Email, Role: a.Role, CompanyID: a.CompanyID}
}
