package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/recruiter-console/internal/api"
	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/types"
)

// Board is the home-page view model: the visible job offers reconciled with
// the applications visible to the viewer. Offers are scoped by role
// (recruiters see their own, everyone else sees all), applications likewise
// (candidates their own, recruiters their offers' feed, admins everything).
type Board struct {
	sess *session.Store
	api  Service
	nav  Navigator

	Offers       []types.JobOffer
	Applications []types.JobApplication

	// Per-fetch errors: one fetch failing must not block the other's data.
	OffersErr       string
	ApplicationsErr string

	// Err holds the outcome of the latest mutation.
	Err string
}

// NewBoard builds the board for the current session.
func NewBoard(sess *session.Store, svc Service, nav Navigator) *Board {
	return &Board{sess: sess, api: svc, nav: nav}
}

// Load fetches offers and applications concurrently. The two fetches are
// independent: either may fail without discarding the other's result, and no
// completion order is assumed.
func (b *Board) Load(ctx context.Context) {
	role := b.sess.Role()

	var (
		offers    []types.JobOffer
		apps      []types.JobApplication
		offersErr error
		appsErr   error
	)

	var g errgroup.Group
	g.Go(func() error {
		if role == types.RoleRecruiter {
			offers, offersErr = b.api.GetMyJobOffers(ctx)
		} else {
			offers, offersErr = b.api.GetAllJobOffers(ctx)
		}
		// The error stays local so a failure never cancels the sibling fetch.
		return nil
	})
	g.Go(func() error {
		apps, appsErr = b.fetchApplications(ctx, role)
		return nil
	})
	_ = g.Wait()

	b.OffersErr = ""
	if offersErr != nil {
		if api.IsUnauthorized(offersErr) {
			b.OffersErr = "unauthorized: please log in again"
			b.redirectToLogin()
		} else {
			b.OffersErr = api.ErrorMessage(offersErr, "failed to fetch job offers")
		}
	} else {
		b.Offers = offers
	}

	b.ApplicationsErr = ""
	if appsErr != nil {
		if api.IsUnauthorized(appsErr) {
			b.ApplicationsErr = "unauthorized: please log in again"
			b.redirectToLogin()
		} else {
			b.ApplicationsErr = api.ErrorMessage(appsErr, "failed to fetch applications")
		}
	} else {
		b.Applications = apps
	}
}

func (b *Board) fetchApplications(ctx context.Context, role types.Role) ([]types.JobApplication, error) {
	switch role {
	case types.RoleCandidate:
		return b.api.GetCandidateApplications(ctx)
	case types.RoleAdmin:
		return b.api.GetAllApplications(ctx)
	case types.RoleRecruiter:
		return b.api.GetRecruiterApplications(ctx)
	default:
		// Anonymous viewers see offers only.
		return nil, nil
	}
}

// ApplicationFor returns the first fetched application matching the offer,
// or nil. First match wins when duplicates exist.
func (b *Board) ApplicationFor(offerID int64) *types.JobApplication {
	return matchApplication(b.Applications, offerID)
}

// matchApplication is the pure, order-preserving scan behind ApplicationFor.
func matchApplication(apps []types.JobApplication, offerID int64) *types.JobApplication {
	for i := range apps {
		if apps[i].JobOfferID == offerID {
			return &apps[i]
		}
	}
	return nil
}

// CanApply reports whether the apply action is enabled for the offer: it is
// disabled exactly when a matching application exists with status PENDING or
// WITHDRAWN. Blocking re-apply after a withdrawal is the server's policy,
// reproduced as-is.
func (b *Board) CanApply(offerID int64) bool {
	app := b.ApplicationFor(offerID)
	if app == nil {
		return true
	}
	return app.Status != types.StatusPending && app.Status != types.StatusWithdrawn
}

// CanWithdraw reports whether the withdraw action is enabled: a matching
// application must exist and still be PENDING.
func (b *Board) CanWithdraw(offerID int64) bool {
	app := b.ApplicationFor(offerID)
	return app != nil && app.Status == types.StatusPending
}

// CanChangeStatus reports whether the status control is enabled. With no
// matching application only an ADMIN may use it (the control then creates an
// application instead of updating one).
func (b *Board) CanChangeStatus(offerID int64) bool {
	if b.ApplicationFor(offerID) != nil {
		return true
	}
	return b.sess.Role() == types.RoleAdmin
}

// CanDeleteOffer reports whether the recruiter may delete the offer:
// only offers with no matched application at all.
func (b *Board) CanDeleteOffer(offerID int64) bool {
	return b.sess.Role() == types.RoleRecruiter && b.ApplicationFor(offerID) == nil
}

// Apply submits an application. On success the candidate's application list
// is re-fetched in full: the client does not know the server-assigned id and
// timestamp, so a local patch would be a guess.
func (b *Board) Apply(ctx context.Context, offerID int64, coverLetter string) {
	user := b.sess.Identity()
	if user == nil || user.Role != types.RoleCandidate {
		b.Err = "you must be a candidate to apply for a job offer"
		b.nav.To(RouteLogin)
		return
	}
	if !b.CanApply(offerID) {
		b.Err = "apply is not available for this offer"
		return
	}

	req := &types.ApplyRequest{JobOfferID: offerID, CoverLetter: coverLetter}
	if err := req.Validate(); err != nil {
		b.Err = err.Error()
		return
	}

	if _, err := b.api.Apply(ctx, req); err != nil {
		b.fail(err, "failed to apply to job offer")
		return
	}

	apps, err := b.api.GetCandidateApplications(ctx)
	if err != nil {
		b.fail(err, "failed to refresh applications")
		return
	}
	b.Applications = apps
	b.Err = ""
}

// Withdraw withdraws the application matched to the offer. On success the
// entry is removed from the local list; the client holds no further use for
// a withdrawn record on this page.
func (b *Board) Withdraw(ctx context.Context, offerID int64) {
	if !b.CanWithdraw(offerID) {
		b.Err = "withdraw is not available for this offer"
		return
	}
	app := b.ApplicationFor(offerID)

	if err := b.api.Withdraw(ctx, app.ID); err != nil {
		b.fail(err, "failed to withdraw application")
		return
	}

	kept := b.Applications[:0:0]
	for _, a := range b.Applications {
		if a.ID != app.ID {
			kept = append(kept, a)
		}
	}
	b.Applications = kept
	b.Err = ""
}

// SetStatus drives the recruiter/admin status control. With a matched
// application it updates the status and patches only that field locally.
// With none it is dual-purpose: an ADMIN creates a new application through
// the apply endpoint (the selected status is not transmitted with the
// creation); a RECRUITER is rejected before any network call.
func (b *Board) SetStatus(ctx context.Context, offerID int64, status types.ApplicationStatus) {
	req := &types.UpdateStatusRequest{Status: status}
	if err := req.Validate(); err != nil {
		b.Err = err.Error()
		return
	}

	app := b.ApplicationFor(offerID)
	if app == nil {
		if b.sess.Role() != types.RoleAdmin {
			b.Err = "no application to update for this offer"
			return
		}
		if _, err := b.api.Apply(ctx, &types.ApplyRequest{JobOfferID: offerID}); err != nil {
			b.fail(err, "failed to create application")
			return
		}
		apps, err := b.fetchApplications(ctx, b.sess.Role())
		if err != nil {
			b.fail(err, "failed to refresh applications")
			return
		}
		b.Applications = apps
		b.Err = ""
		return
	}

	if err := b.api.UpdateApplicationStatus(ctx, app.ID, status); err != nil {
		b.fail(err, "failed to update application status")
		return
	}

	for i := range b.Applications {
		if b.Applications[i].ID == app.ID {
			b.Applications[i].Status = status
		}
	}
	b.Err = ""
}

// DeleteOffer deletes an offer with no matched application. When any
// application is matched the action is rejected locally, producing no
// network call.
func (b *Board) DeleteOffer(ctx context.Context, offerID int64) {
	if b.sess.Role() != types.RoleRecruiter {
		b.Err = "only recruiters can delete job offers"
		return
	}
	if b.ApplicationFor(offerID) != nil {
		b.Err = "cannot delete job offer with active applications"
		return
	}

	if err := b.api.DeleteJobOffer(ctx, offerID); err != nil {
		b.fail(err, "failed to delete job offer - cannot delete job offer with active applications")
		return
	}

	kept := b.Offers[:0:0]
	for _, o := range b.Offers {
		if o.ID != offerID {
			kept = append(kept, o)
		}
	}
	b.Offers = kept
	b.Err = ""
}

// fail converts a mutation error into the displayable string and performs
// the uniform 401 handling: clear the session, go to login.
func (b *Board) fail(err error, fallback string) {
	b.Err = api.ErrorMessage(err, fallback)
	if api.IsUnauthorized(err) {
		b.redirectToLogin()
	}
}

func (b *Board) redirectToLogin() {
	b.sess.Logout()
	b.nav.To(RouteLogin)
}
