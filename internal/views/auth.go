package views

import (
	"context"

	"github.com/jonathan/recruiter-console/internal/api"
	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/types"
)

// RegisterForm is the registration page. Validation failures never reach
// the network.
type RegisterForm struct {
	sess *session.Store
	api  Service
	nav  Navigator

	Err string
}

// NewRegisterForm builds the registration form.
func NewRegisterForm(sess *session.Store, svc Service, nav Navigator) *RegisterForm {
	return &RegisterForm{sess: sess, api: svc, nav: nav}
}

// Submit validates and registers. On success the returned identity and token
// are logged in and the viewer goes home.
func (f *RegisterForm) Submit(ctx context.Context, req *types.RegisterRequest) {
	if err := req.Validate(); err != nil {
		f.Err = err.Error()
		return
	}

	resp, err := f.api.Register(ctx, req)
	if err != nil {
		f.Err = api.ErrorMessage(err, "registration failed")
		return
	}

	if err := f.sess.Login(resp.Identity(), resp.Token); err != nil {
		f.Err = err.Error()
		return
	}
	f.Err = ""
	f.nav.To(RouteHome)
}

// LoginForm is the login page.
type LoginForm struct {
	sess *session.Store
	api  Service
	nav  Navigator

	Err string
}

// NewLoginForm builds the login form.
func NewLoginForm(sess *session.Store, svc Service, nav Navigator) *LoginForm {
	return &LoginForm{sess: sess, api: svc, nav: nav}
}

// Submit validates credentials superficially and logs in. The login
// response's companyId, when present, is kept on the session identity.
func (f *LoginForm) Submit(ctx context.Context, req *types.LoginRequest) {
	if err := req.Validate(); err != nil {
		f.Err = err.Error()
		return
	}

	resp, err := f.api.Login(ctx, req)
	if err != nil {
		f.Err = api.ErrorMessage(err, "login failed")
		return
	}

	if err := f.sess.Login(resp.Identity(), resp.Token); err != nil {
		f.Err = err.Error()
		return
	}
	f.Err = ""
	f.nav.To(RouteHome)
}
