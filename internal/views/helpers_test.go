package views

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/types"
)

// fakeService implements Service with per-method hooks and call counters so
// tests can assert that an action produced no network call at all.
type fakeService struct {
	calls map[string]int

	registerFn     func(req *types.RegisterRequest) (*types.AuthResponse, error)
	loginFn        func(req *types.LoginRequest) (*types.AuthResponse, error)
	allOffersFn    func() ([]types.JobOffer, error)
	myOffersFn     func() ([]types.JobOffer, error)
	createOfferFn  func(req *types.CreateJobOfferRequest) (*types.JobOffer, error)
	deleteOfferFn  func(id int64) error
	candidateFn    func() ([]types.JobApplication, error)
	recruiterFn    func() ([]types.JobApplication, error)
	allAppsFn      func() ([]types.JobApplication, error)
	applyFn        func(req *types.ApplyRequest) (*types.JobApplication, error)
	withdrawFn     func(id int64) error
	updateStatusFn func(id int64, status types.ApplicationStatus) error
	companiesFn    func() ([]types.Company, error)
	deleteSelfFn   func() error
}

func newFakeService() *fakeService {
	return &fakeService{calls: map[string]int{}}
}

func (f *fakeService) Register(_ context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	f.calls["Register"]++
	return f.registerFn(req)
}

func (f *fakeService) Login(_ context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	f.calls["Login"]++
	return f.loginFn(req)
}

func (f *fakeService) GetAllJobOffers(_ context.Context) ([]types.JobOffer, error) {
	f.calls["GetAllJobOffers"]++
	return f.allOffersFn()
}

func (f *fakeService) GetMyJobOffers(_ context.Context) ([]types.JobOffer, error) {
	f.calls["GetMyJobOffers"]++
	return f.myOffersFn()
}

func (f *fakeService) CreateJobOffer(_ context.Context, req *types.CreateJobOfferRequest) (*types.JobOffer, error) {
	f.calls["CreateJobOffer"]++
	return f.createOfferFn(req)
}

func (f *fakeService) DeleteJobOffer(_ context.Context, id int64) error {
	f.calls["DeleteJobOffer"]++
	return f.deleteOfferFn(id)
}

func (f *fakeService) GetCandidateApplications(_ context.Context) ([]types.JobApplication, error) {
	f.calls["GetCandidateApplications"]++
	return f.candidateFn()
}

func (f *fakeService) GetRecruiterApplications(_ context.Context) ([]types.JobApplication, error) {
	f.calls["GetRecruiterApplications"]++
	return f.recruiterFn()
}

func (f *fakeService) GetAllApplications(_ context.Context) ([]types.JobApplication, error) {
	f.calls["GetAllApplications"]++
	return f.allAppsFn()
}

func (f *fakeService) Apply(_ context.Context, req *types.ApplyRequest) (*types.JobApplication, error) {
	f.calls["Apply"]++
	return f.applyFn(req)
}

func (f *fakeService) Withdraw(_ context.Context, id int64) error {
	f.calls["Withdraw"]++
	return f.withdrawFn(id)
}

func (f *fakeService) UpdateApplicationStatus(_ context.Context, id int64, status types.ApplicationStatus) error {
	f.calls["UpdateApplicationStatus"]++
	return f.updateStatusFn(id, status)
}

func (f *fakeService) GetCompanies(_ context.Context) ([]types.Company, error) {
	f.calls["GetCompanies"]++
	return f.companiesFn()
}

func (f *fakeService) DeleteSelf(_ context.Context) error {
	f.calls["DeleteSelf"]++
	return f.deleteSelfFn()
}

// fakeNavigator records every navigation.
type fakeNavigator struct {
	routes []Route
}

func (n *fakeNavigator) To(route Route) {
	n.routes = append(n.routes, route)
}

func (n *fakeNavigator) last() Route {
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

// newSession builds a session store backed by a throwaway token file,
// optionally logged in with the given role.
func newSession(t *testing.T, role types.Role) *session.Store {
	t.Helper()

	sess, err := session.New(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	if role != "" {
		require.NoError(t, sess.Login(&types.UserIdentity{
			Email: "viewer@example.com",
			Role:  role,
		}, "test-token"))
	}
	return sess
}
