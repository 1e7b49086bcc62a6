package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openpersona/console/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run:   whoamiHandler,
}

func whoamiHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()

	if !store.Authenticated() {
		fmt.Println("Not logged in.")
		return
	}

	me, err := api.Auth.Me(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch the session: %v\n", err)
		os.Exit(1)
	}

	if me.User != nil {
		fmt.Printf("Email:  %s\n", me.User.Email)
		if me.User.Handle != "" {
			fmt.Printf("Handle: @%s\n", me.User.Handle)
		}
	}
	if plan := store.Plan(); plan != nil {
		fmt.Printf("Plan:   %s\n", plan.Name)
	}
	if exp, ok := session.TokenExpiry(store.Token()); ok {
		fmt.Printf("Token:  expires %s\n", exp.Format(time.RFC1123))
	}
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
