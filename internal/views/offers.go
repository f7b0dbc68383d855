package views

import (
	"context"

	"github.com/jonathan/recruiter-console/internal/api"
	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/types"
)

// AllOffers is the plain listing of every visible job offer. The fetch works
// with or without a token.
type AllOffers struct {
	api Service

	Offers []types.JobOffer
	Err    string
}

// NewAllOffers builds the listing view.
func NewAllOffers(svc Service) *AllOffers {
	return &AllOffers{api: svc}
}

// Load fetches all offers.
func (v *AllOffers) Load(ctx context.Context) {
	offers, err := v.api.GetAllJobOffers(ctx)
	if err != nil {
		v.Err = api.ErrorMessage(err, "failed to fetch job offers")
		return
	}
	v.Offers = offers
	v.Err = ""
}

// Account handles account self-deletion.
type Account struct {
	sess *session.Store
	api  Service
	nav  Navigator

	Err string
}

// NewAccount builds the account view for the current session.
func NewAccount(sess *session.Store, svc Service, nav Navigator) *Account {
	return &Account{sess: sess, api: svc, nav: nav}
}

// DeleteSelf deletes the account and destroys the session, persisted token
// included.
func (a *Account) DeleteSelf(ctx context.Context) {
	if a.sess.Identity() == nil && a.sess.Token() == "" {
		a.Err = "not logged in"
		return
	}

	if err := a.api.DeleteSelf(ctx); err != nil {
		a.Err = api.ErrorMessage(err, "failed to delete account")
		if api.IsUnauthorized(err) {
			a.sess.Logout()
			a.nav.To(RouteLogin)
		}
		return
	}

	a.sess.Logout()
	a.nav.To(RouteLogin)
	a.Err = ""
}
