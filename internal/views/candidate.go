package views

import (
	"context"

	"github.com/jonathan/recruiter-console/internal/api"
	"github.com/jonathan/recruiter-console/internal/guard"
	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/types"
)

// CandidateDashboard lists the candidate's own applications.
type CandidateDashboard struct {
	sess *session.Store
	api  Service
	nav  Navigator

	Applications []types.JobApplication
	Err          string
}

// NewCandidateDashboard builds the dashboard for the current session.
func NewCandidateDashboard(sess *session.Store, svc Service, nav Navigator) *CandidateDashboard {
	return &CandidateDashboard{sess: sess, api: svc, nav: nav}
}

// Load fetches the application list. Non-candidates are sent to login.
func (d *CandidateDashboard) Load(ctx context.Context) {
	if err := guard.Require(types.RoleCandidate).Check(d.sess); err != nil {
		d.Err = "you must be a candidate to view this dashboard"
		d.nav.To(RouteLogin)
		return
	}

	apps, err := d.api.GetCandidateApplications(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			d.Err = "unauthorized: please log in again"
			d.sess.Logout()
			d.nav.To(RouteLogin)
			return
		}
		d.Err = api.ErrorMessage(err, "failed to fetch applications")
		return
	}
	d.Applications = apps
	d.Err = ""
}

// CanWithdraw reports whether the application may still be withdrawn.
func (d *CandidateDashboard) CanWithdraw(applicationID int64) bool {
	for _, a := range d.Applications {
		if a.ID == applicationID {
			return a.Status == types.StatusPending
		}
	}
	return false
}

// Withdraw withdraws by application id and removes the entry from the local
// list entirely, not just flips its status.
func (d *CandidateDashboard) Withdraw(ctx context.Context, applicationID int64) {
	if !d.CanWithdraw(applicationID) {
		d.Err = "only pending applications can be withdrawn"
		return
	}

	if err := d.api.Withdraw(ctx, applicationID); err != nil {
		d.Err = api.ErrorMessage(err, "failed to withdraw application")
		if api.IsUnauthorized(err) {
			d.sess.Logout()
			d.nav.To(RouteLogin)
		}
		return
	}

	kept := d.Applications[:0:0]
	for _, a := range d.Applications {
		if a.ID != applicationID {
			kept = append(kept, a)
		}
	}
	d.Applications = kept
	d.Err = ""
}
