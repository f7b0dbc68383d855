// Package views implements the per-page logic: each view model fetches what
// its page shows, derives local state, and issues the page's mutations.
// View models receive the session store, the API and a Navigator at
// construction; there is no ambient global state.
package views

import (
	"context"

	"github.com/jonathan/recruiter-console/internal/types"
)

// Service is the slice of the API client the view models consume. The
// api.Client satisfies it; tests use fakes.
type Service interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)

	GetAllJobOffers(ctx context.Context) ([]types.JobOffer, error)
	GetMyJobOffers(ctx context.Context) ([]types.JobOffer, error)
	CreateJobOffer(ctx context.Context, req *types.CreateJobOfferRequest) (*types.JobOffer, error)
	DeleteJobOffer(ctx context.Context, id int64) error

	GetCandidateApplications(ctx context.Context) ([]types.JobApplication, error)
	GetRecruiterApplications(ctx context.Context) ([]types.JobApplication, error)
	GetAllApplications(ctx context.Context) ([]types.JobApplication, error)
	Apply(ctx context.Context, req *types.ApplyRequest) (*types.JobApplication, error)
	Withdraw(ctx context.Context, id int64) error
	UpdateApplicationStatus(ctx context.Context, id int64, status types.ApplicationStatus) error

	GetCompanies(ctx context.Context) ([]types.Company, error)
	DeleteSelf(ctx context.Context) error
}
