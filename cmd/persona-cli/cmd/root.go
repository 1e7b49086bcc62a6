package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/authevents"
	"github.com/openpersona/console/internal/domain"
	"github.com/openpersona/console/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "persona-cli",
	Short: "OpenPersona command-line client",
	Long: `persona-cli talks to the same OpenPersona backend as the web console
and shares its session state, so a login in either is visible to both.

Use "persona-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEnv builds the API client and session store the way the server does,
// minus the parts a terminal session has no use for. The CLI reads only
// API_BASE_URL and STATE_DIR; it never needs the cookie session secret.
func newEnv() (*apiclient.Client, *session.Store) {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}
	stateDir := os.Getenv("STATE_DIR")
	if stateDir == "" {
		stateDir = ".openpersona"
	}

	bus := authevents.NewBus()
	store := session.New(afero.NewOsFs(), filepath.Join(stateDir, "session.json"),
		session.WithBus(bus),
	)

	api := apiclient.New(baseURL,
		apiclient.WithBus(bus),
		apiclient.WithTokenSource(store),
	)
	return api, store
}

// requireLogin exits early for commands that need a session token.
func requireLogin(store *session.Store) {
	if !store.Authenticated() {
		fmt.Fprintf(os.Stderr, "Error: %v. Run 'persona-cli login' first.\n", domain.ErrNotAuthenticated)
		os.Exit(1)
	}
}
