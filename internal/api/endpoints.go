package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/recruiter-console/internal/schemas"
	"github.com/jonathan/recruiter-console/internal/types"
)

// Register creates an account. Not authenticated.
func (c *Client) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", req, &out, false, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token and identity. Not authenticated.
func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", req, &out, false, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllJobOffers lists every visible offer. Works with or without a token.
func (c *Client) GetAllJobOffers(ctx context.Context) ([]types.JobOffer, error) {
	var out []types.JobOffer
	err := c.do(ctx, "list job offers", http.MethodGet, "/job-offers/getAllJobOffers",
		nil, &out, true, schemas.ValidateJobOffers)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetMyJobOffers lists the recruiter's own offers.
func (c *Client) GetMyJobOffers(ctx context.Context) ([]types.JobOffer, error) {
	var out []types.JobOffer
	err := c.do(ctx, "list my job offers", http.MethodGet, "/job-offers/getMyJobOffers",
		nil, &out, true, schemas.ValidateJobOffers)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateJobOffer posts a new offer and returns the server's copy.
func (c *Client) CreateJobOffer(ctx context.Context, req *types.CreateJobOfferRequest) (*types.JobOffer, error) {
	var out types.JobOffer
	if err := c.do(ctx, "create job offer", http.MethodPost, "/job-offers/create", req, &out, true, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteJobOffer removes an offer. The server refuses when active
// applications exist.
func (c *Client) DeleteJobOffer(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/job-offers/%d", id)
	return c.do(ctx, "delete job offer", http.MethodDelete, path, nil, nil, true, nil)
}

// GetCandidateApplications lists the candidate's own applications.
func (c *Client) GetCandidateApplications(ctx context.Context) ([]types.JobApplication, error) {
	var out []types.JobApplication
	err := c.do(ctx, "list candidate applications", http.MethodGet,
		"/job-applications/getCandidateJobApplications", nil, &out, true, schemas.ValidateJobApplications)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecruiterApplications lists applications to the recruiter's offers,
// enriched with candidate contact and skill fields. ADMIN may call it too.
func (c *Client) GetRecruiterApplications(ctx context.Context) ([]types.JobApplication, error) {
	var out []types.JobApplication
	err := c.do(ctx, "list recruiter applications", http.MethodGet,
		"/job-applications/getJobsApplicationsForRecruiters", nil, &out, true, schemas.ValidateJobApplications)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllApplications lists every application. ADMIN only.
func (c *Client) GetAllApplications(ctx context.Context) ([]types.JobApplication, error) {
	var out []types.JobApplication
	err := c.do(ctx, "list all applications", http.MethodGet,
		"/job-applications/getAllJobApplications", nil, &out, true, schemas.ValidateJobApplications)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Apply submits an application and returns the server's copy with the
// assigned id and timestamp.
func (c *Client) Apply(ctx context.Context, req *types.ApplyRequest) (*types.JobApplication, error) {
	var out types.JobApplication
	if err := c.do(ctx, "apply", http.MethodPost, "/job-applications/apply", req, &out, true, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Withdraw withdraws an application by id.
func (c *Client) Withdraw(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/job-applications/withdrawApplication/%d", id)
	return c.do(ctx, "withdraw application", http.MethodDelete, path, nil, nil, true, nil)
}

// UpdateApplicationStatus moves an application to the given status.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status types.ApplicationStatus) error {
	path := fmt.Sprintf("/job-applications/updateApplicationStatus/%d", id)
	req := &types.UpdateStatusRequest{Status: status}
	return c.do(ctx, "update application status", http.MethodPut, path, req, nil, true, nil)
}

// GetCompanies lists the companies the recruiter belongs to.
func (c *Client) GetCompanies(ctx context.Context) ([]types.Company, error) {
	var out []types.Company
	err := c.do(ctx, "list companies", http.MethodGet, "/users/companies",
		nil, &out, true, schemas.ValidateCompanies)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSelf deletes the calling account.
func (c *Client) DeleteSelf(ctx context.Context) error {
	return c.do(ctx, "delete account", http.MethodDelete, "/users/delete-self", nil, nil, true, nil)
}
