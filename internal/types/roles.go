// Package types provides type definitions for the records exchanged with the
// recruiting API and the client-side session.
package types

// Role is the server-assigned account role.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is one of the roles the server issues.
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "PENDING"
	StatusUnderReview ApplicationStatus = "UNDER_REVIEW"
	StatusInterview   ApplicationStatus = "INTERVIEW"
	StatusAccepted    ApplicationStatus = "ACCEPTED"
	StatusRejected    ApplicationStatus = "REJECTED"
	StatusWithdrawn   ApplicationStatus = "WITHDRAWN"
)

// Valid reports whether s is a status the server understands.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusInterview,
		StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// EmploymentType is the contract type attached to a job offer.
type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "FULL_TIME"
	EmploymentPartTime  EmploymentType = "PART_TIME"
	EmploymentFreelance EmploymentType = "FREELANCE"
)
