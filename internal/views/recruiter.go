package views

import (
	"context"

	"github.com/jonathan/recruiter-console/internal/api"
	"github.com/jonathan/recruiter-console/internal/guard"
	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/types"
)

// RecruiterDashboard lists the applications to the recruiter's offers,
// enriched with candidate contact and skill fields. Admins see it too.
type RecruiterDashboard struct {
	sess *session.Store
	api  Service
	nav  Navigator

	Applications []types.JobApplication
	Err          string
}

// NewRecruiterDashboard builds the dashboard for the current session.
func NewRecruiterDashboard(sess *session.Store, svc Service, nav Navigator) *RecruiterDashboard {
	return &RecruiterDashboard{sess: sess, api: svc, nav: nav}
}

// Load fetches the enriched application feed.
func (d *RecruiterDashboard) Load(ctx context.Context) {
	if err := guard.Require(types.RoleRecruiter, types.RoleAdmin).Check(d.sess); err != nil {
		d.Err = "you must be a recruiter or admin to view this dashboard"
		d.nav.To(RouteLogin)
		return
	}

	apps, err := d.api.GetRecruiterApplications(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			d.sess.Logout()
			d.nav.To(RouteLogin)
		}
		d.Err = api.ErrorMessage(err, "failed to fetch applications")
		return
	}
	d.Applications = apps
	d.Err = ""
}

// CanChangeStatus reports whether the status control is enabled for the
// entry. Withdrawn applications are frozen.
func (d *RecruiterDashboard) CanChangeStatus(applicationID int64) bool {
	for _, a := range d.Applications {
		if a.ID == applicationID {
			return a.Status != types.StatusWithdrawn
		}
	}
	return false
}

// SetStatus updates one application's status and patches only that field in
// the local list; everything else on the entry is left as fetched.
func (d *RecruiterDashboard) SetStatus(ctx context.Context, applicationID int64, status types.ApplicationStatus) {
	if !d.CanChangeStatus(applicationID) {
		d.Err = "status cannot be changed for this application"
		return
	}

	req := &types.UpdateStatusRequest{Status: status}
	if err := req.Validate(); err != nil {
		d.Err = err.Error()
		return
	}

	if err := d.api.UpdateApplicationStatus(ctx, applicationID, status); err != nil {
		d.Err = api.ErrorMessage(err, "failed to update application status")
		if api.IsUnauthorized(err) {
			d.sess.Logout()
			d.nav.To(RouteLogin)
		}
		return
	}

	for i := range d.Applications {
		if d.Applications[i].ID == applicationID {
			d.Applications[i].Status = status
		}
	}
	d.Err = ""
}
