// Package cmd implements the moodctl command tree. Each command is a
// view: protected commands evaluate a route guard before running, map
// API errors to user-facing messages and render paged results.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moodify/moodctl/client"
	"github.com/moodify/moodctl/guard"
	"github.com/moodify/moodctl/internal/config"
	"github.com/moodify/moodctl/internal/logger"
	"github.com/moodify/moodctl/session"
)

// app bundles the dependencies every command needs. It is built once in
// the root PersistentPreRunE; commands read it, never rebuild it.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	sessions session.Store
	api      *client.Client
	closeFn  func() error
}

var a *app

var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "moodctl is a command-line client for the Moodify mood post service",
	Long: `A command-line client for Moodify: share short mood posts linked to a
song, browse the feed, like and comment, and administer users.

The API address is read from MOODIFY_API_URL; without it moodctl talks
to http://localhost:8080/api.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		built, err := buildApp(cmd)
		if err != nil {
			return err
		}
		a = built
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if a != nil && a.closeFn != nil {
			return a.closeFn()
		}
		return nil
	},
}

func buildApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	path := cfg.SessionFile
	if path == "" {
		path = session.DefaultPath()
	}
	store, err := session.NewBoltStoreFromFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	api := client.New(client.Config{
		BaseURL:  cfg.APIBaseURL,
		Sessions: store,
		Logger:   log,
	})

	return &app{
		cfg:      cfg,
		log:      log,
		sessions: store,
		api:      api,
		closeFn:  store.Close,
	}, nil
}

// errRedirectLogin and errRedirectHome translate guard redirects into
// CLI hints.
var (
	errRedirectLogin = errors.New("you are not logged in; run 'moodctl login' first")
	errRedirectHome  = errors.New("this command requires the admin role")
)

func guardErr(d guard.Decision) error {
	if d.Allowed() {
		return nil
	}
	if d.Redirect() == guard.TargetHome {
		return errRedirectHome
	}
	return errRedirectLogin
}

// requireAuth gates a command on a logged-in session and returns it.
func requireAuth(a *app) (session.Session, error) {
	sess, ok := a.sessions.Current()
	if err := guardErr(guard.RequireAuthenticated(sess, ok)); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

// requireAdmin gates a command on an admin session and returns it.
func requireAdmin(a *app) (session.Session, error) {
	sess, ok := a.sessions.Current()
	if err := guardErr(guard.RequireAdmin(sess, ok)); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
