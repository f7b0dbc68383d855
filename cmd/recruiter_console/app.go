package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/recruiter-console/internal/api"
	"github.com/jonathan/recruiter-console/internal/config"
	"github.com/jonathan/recruiter-console/internal/logging"
	"github.com/jonathan/recruiter-console/internal/render"
	"github.com/jonathan/recruiter-console/internal/session"
	"github.com/jonathan/recruiter-console/internal/views"
)

// app bundles the pieces every command needs: config, session store, API
// client, printer and navigator.
type app struct {
	cfg     *config.Config
	sess    *session.Store
	api     *api.Client
	nav     views.Navigator
	printer *render.Printer
}

// newApp wires the client from configuration. The identity is restored from
// the persisted token's claims when one exists, so role-gated commands work
// across process restarts without a fresh login.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{Env: cfg.LogEnv, Level: cfg.LogLevel})

	sess, err := session.New(cfg.TokenPath())
	if err != nil {
		return nil, err
	}
	if sess.Token() != "" {
		// Best effort: an undecodable token just means staying anonymous
		// until the next login.
		var noToken *session.ErrNoToken
		if _, err := sess.RehydrateIdentity(); err != nil && !errors.As(err, &noToken) {
			logger.Debug().Err(err).Msg("could not restore identity from stored token")
		}
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout(),
		Tokens:  sess,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		sess:    sess,
		api:     client,
		nav:     &consoleNavigator{out: os.Stdout},
		printer: render.NewPrinter(os.Stdout),
	}, nil
}

// consoleNavigator reflects client-side navigation as a printed hint; in a
// terminal there is no router to drive.
type consoleNavigator struct {
	out io.Writer
}

func (n *consoleNavigator) To(route views.Route) {
	_, _ = fmt.Fprintf(n.out, "navigate: %s\n", route)
}

// finish prints the view model error, when any, and converts it into a
// non-zero exit.
func (a *app) finish(errMsg string) error {
	if errMsg == "" {
		return nil
	}
	a.printer.PrintError(errMsg)
	return fmt.Errorf("%s", errMsg)
}
