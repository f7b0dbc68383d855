package types

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the payload for POST /auth/register.
//
// The validation mirrors the server's superficial format/length checks so a
// bad payload never leaves the client; the server remains the authority.
type RegisterRequest struct {
	Email      string   `json:"email" validate:"required,email,min=5,max=254"`
	Password   string   `json:"password" validate:"required,min=6"`
	FirstName  string   `json:"firstName" validate:"required,min=2,max=50"`
	LastName   string   `json:"lastName" validate:"required,min=2,max=50"`
	Phone      string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role       Role     `json:"role" validate:"required,oneof=CANDIDATE RECRUITER"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience,omitempty"`
	CompanyIDs []int64  `json:"companyIds"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ApplyRequest is the payload for POST /job-applications/apply.
type ApplyRequest struct {
	JobOfferID  int64  `json:"jobOfferId" validate:"required,gt=0"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// UpdateStatusRequest is the payload for PUT /job-applications/updateApplicationStatus/{id}.
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required,oneof=PENDING UNDER_REVIEW INTERVIEW ACCEPTED REJECTED WITHDRAWN"`
}

// CreateJobOfferRequest is the payload for POST /job-offers/create.
type CreateJobOfferRequest struct {
	Title          string         `json:"title" validate:"required"`
	Description    string         `json:"description" validate:"required"`
	Salary         float64        `json:"salary" validate:"required"`
	Location       string         `json:"location" validate:"required"`
	EmploymentType EmploymentType `json:"employmentType" validate:"required,oneof=FULL_TIME PART_TIME FREELANCE"`
	CompanyID      int64          `json:"companyId" validate:"required,gt=0"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ApplyRequest using the validator.
func (r *ApplyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateStatusRequest using the validator.
func (r *UpdateStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateJobOfferRequest using the validator.
func (r *CreateJobOfferRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
