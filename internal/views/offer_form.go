package views

import (
	"context"

	"github.com/jonathan/recruiter-console/internal/api"
	"github.com/jonathan/recruiter-console/internal/guard"
	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/types"
)

// OfferForm is the job-offer creation page: recruiters only. The form's
// company choice is restricted to the companies the recruiter belongs to.
type OfferForm struct {
	sess *session.Store
	api  Service
	nav  Navigator

	Companies []types.Company
	Created   *types.JobOffer
	Err       string
}

// NewOfferForm builds the form for the current session.
func NewOfferForm(sess *session.Store, svc Service, nav Navigator) *OfferForm {
	return &OfferForm{sess: sess, api: svc, nav: nav}
}

// Load fetches the recruiter's companies. Non-recruiters are sent to login.
func (f *OfferForm) Load(ctx context.Context) {
	if err := guard.Require(types.RoleRecruiter).Check(f.sess); err != nil {
		f.Err = "you must be a recruiter to create job offers"
		f.nav.To(RouteLogin)
		return
	}

	companies, err := f.api.GetCompanies(ctx)
	if err != nil {
		f.Err = api.ErrorMessage(err, "failed to fetch companies")
		if api.IsUnauthorized(err) {
			f.sess.Logout()
			f.nav.To(RouteLogin)
		}
		return
	}
	f.Companies = companies
	f.Err = ""
}

// Submit validates the draft and creates the offer. The company must be one
// of the fetched companies; nothing is sent when validation fails. On
// success the viewer is sent back home.
func (f *OfferForm) Submit(ctx context.Context, draft *types.CreateJobOfferRequest) {
	if err := draft.Validate(); err != nil {
		f.Err = err.Error()
		return
	}
	if !f.knownCompany(draft.CompanyID) {
		f.Err = "company ID must be one of your companies"
		return
	}

	created, err := f.api.CreateJobOffer(ctx, draft)
	if err != nil {
		f.Err = api.ErrorMessage(err, "failed to create job offer")
		if api.IsUnauthorized(err) {
			f.sess.Logout()
			f.nav.To(RouteLogin)
		}
		return
	}

	f.Created = created
	f.Err = ""
	f.nav.To(RouteHome)
}

func (f *OfferForm) knownCompany(id int64) bool {
	for _, c := range f.Companies {
		if c.ID == id {
			return true
		}
	}
	return false
}
