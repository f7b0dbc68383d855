package views

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-console/internal/api"
	"github.com/jonathan/recruiter-console/internal/types"
)

func validRegisterRequest() *types.RegisterRequest {
	return &types.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "secret1",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      types.RoleCandidate,
	}
}

func TestRegisterFormValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *types.RegisterRequest)
	}{
		{name: "bad email", mutate: func(r *types.RegisterRequest) { r.Email = "not-an-email" }},
		{name: "short password", mutate: func(r *types.RegisterRequest) { r.Password = "short" }},
		{name: "short first name", mutate: func(r *types.RegisterRequest) { r.FirstName = "J" }},
		{name: "long last name", mutate: func(r *types.RegisterRequest) { r.LastName = strings.Repeat("a", 51) }},
		{name: "long phone", mutate: func(r *types.RegisterRequest) { r.Phone = "123456789012345678901" }},
		{name: "admin role rejected", mutate: func(r *types.RegisterRequest) { r.Role = types.RoleAdmin }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService()
			sess := newSession(t, "")
			form := NewRegisterForm(sess, svc, &fakeNavigator{})

			req := validRegisterRequest()
			tt.mutate(req)
			form.Submit(context.Background(), req)

			// Validation failures never reach the network.
			assert.NotEmpty(t, form.Err)
			assert.Zero(t, svc.calls["Register"])
			assert.Nil(t, sess.Identity())
		})
	}
}

func TestRegisterFormSuccessLogsIn(t *testing.T) {
	svc := newFakeService()
	svc.registerFn = func(req *types.RegisterRequest) (*types.AuthResponse, error) {
		return &types.AuthResponse{
			Token: "issued-token",
			Email: req.Email,
			Role:  req.Role,
		}, nil
	}

	sess := newSession(t, "")
	nav := &fakeNavigator{}
	form := NewRegisterForm(sess, svc, nav)
	form.Submit(context.Background(), validRegisterRequest())

	assert.Empty(t, form.Err)
	require.NotNil(t, sess.Identity())
	assert.Equal(t, "jane@example.com", sess.Identity().Email)
	assert.Equal(t, "issued-token", sess.Token())
	assert.Equal(t, RouteHome, nav.last())
}

func TestLoginFormKeepsCompanyID(t *testing.T) {
	svc := newFakeService()
	svc.loginFn = func(req *types.LoginRequest) (*types.AuthResponse, error) {
		return &types.AuthResponse{
			Token:     "issued-token",
			Email:     req.Email,
			Role:      types.RoleRecruiter,
			CompanyID: 12,
		}, nil
	}

	sess := newSession(t, "")
	nav := &fakeNavigator{}
	form := NewLoginForm(sess, svc, nav)
	form.Submit(context.Background(), &types.LoginRequest{Email: "rec@example.com", Password: "secret1"})

	assert.Empty(t, form.Err)
	require.NotNil(t, sess.Identity())
	assert.Equal(t, int64(12), sess.Identity().CompanyID)
	assert.Equal(t, RouteHome, nav.last())
}

func TestLoginFormServerErrorSurfacedVerbatim(t *testing.T) {
	svc := newFakeService()
	svc.loginFn = func(*types.LoginRequest) (*types.AuthResponse, error) {
		return nil, &api.ServerError{Op: "login", Status: 401, Body: "invalid email or password"}
	}

	sess := newSession(t, "")
	form := NewLoginForm(sess, svc, &fakeNavigator{})
	form.Submit(context.Background(), &types.LoginRequest{Email: "rec@example.com", Password: "wrong!"})

	assert.Equal(t, "invalid email or password", form.Err)
	assert.Nil(t, sess.Identity())
}

func TestLoginFormTransportErrorUsesFallback(t *testing.T) {
	svc := newFakeService()
	svc.loginFn = func(*types.LoginRequest) (*types.AuthResponse, error) {
		return nil, &api.RequestError{Op: "login", Cause: assert.AnError}
	}

	form := NewLoginForm(newSession(t, ""), svc, &fakeNavigator{})
	form.Submit(context.Background(), &types.LoginRequest{Email: "rec@example.com", Password: "secret1"})

	assert.Equal(t, "login failed", form.Err)
}
