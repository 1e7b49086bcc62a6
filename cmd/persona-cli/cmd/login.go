package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openpersona/console/internal/apiclient"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the OpenPersona backend",
	Long: `Log in and persist the session locally. The password can be passed with
--password or through the PERSONA_PASSWORD environment variable.

Examples:
  persona-cli login --email you@example.com --password secret
  PERSONA_PASSWORD=secret persona-cli login --email you@example.com`,
	Run: loginHandler,
}

func loginHandler(cmd *cobra.Command, args []string) {
	password := loginPassword
	if password == "" {
		password = os.Getenv("PERSONA_PASSWORD")
	}
	if loginEmail == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Error: --email and a password are required")
		os.Exit(1)
	}

	api, store := newEnv()
	defer store.Close()

	backendSession, err := api.Auth.Login(context.Background(), apiclient.Credentials{
		Email:    loginEmail,
		Password: password,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: login failed: %v\n", err)
		os.Exit(1)
	}

	store.SignIn(backendSession)
	fmt.Printf("Logged in as %s\n", loginEmail)
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (or PERSONA_PASSWORD)")
	rootCmd.AddCommand(loginCmd)
}
