package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and update your profile",
}

// profileShowCmd represents the profile show command
var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	Run:   profileShowHandler,
}

func profileShowHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	user, err := api.Profile.Get(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch the profile: %v\n", err)
		os.Exit(1)
	}
	store.SetUser(user)

	fmt.Printf("Name:   %s\n", user.Name)
	fmt.Printf("Email:  %s\n", user.Email)
	if user.Handle != "" {
		fmt.Printf("Handle: @%s\n", user.Handle)
	}
	if user.Plan != nil {
		fmt.Printf("Plan:   %s\n", user.Plan.Name)
	}
}

// profileSetHandleCmd represents the profile set-handle command
var profileSetHandleCmd = &cobra.Command{
	Use:   "set-handle <handle>",
	Short: "Change the public handle your profile is served under",
	Args:  cobra.ExactArgs(1),
	Run:   profileSetHandleHandler,
}

func profileSetHandleHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	user, err := api.Profile.UpdateHandle(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not update the handle: %v\n", err)
		os.Exit(1)
	}
	store.SetUser(user)

	fmt.Printf("Handle updated. Your profile now lives at /@%s\n", user.Handle)
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetHandleCmd)
	rootCmd.AddCommand(profileCmd)
}
