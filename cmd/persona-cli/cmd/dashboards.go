package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openpersona/console/internal/apiclient"
)

var dashboardsOutputFormat string

var dashboardsCmd = &cobra.Command{
	Use:   "dashboards",
	Short: "Work with your dashboards",
}

// dashboardsListCmd represents the dashboards list command
var dashboardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your dashboards",
	Long: `List the dashboards on your account.

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format`,
	Run: dashboardsListHandler,
}

func dashboardsListHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	dashboards, err := api.Dashboards.List(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not list dashboards: %v\n", err)
		os.Exit(1)
	}
	store.SetDashboards(dashboards)

	if dashboardsOutputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dashboards); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tVISIBILITY\tPRIMARY")
	for _, d := range dashboards {
		primary := ""
		if d.IsPrimary {
			primary = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Slug, d.Title, d.Visibility, primary)
	}
	w.Flush()
}

// dashboardsCreateCmd represents the dashboards create command
var dashboardsCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new dashboard",
	Args:  cobra.ExactArgs(1),
	Run:   dashboardsCreateHandler,
}

func dashboardsCreateHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	// Warm the cache so the quota check sees the real count.
	if dashboards, err := api.Dashboards.List(context.Background()); err == nil {
		store.SetDashboards(dashboards)
	}
	if err := store.EnsureCanCreateDashboard(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	title := args[0]
	created, err := api.Dashboards.Create(context.Background(), apiclient.CreateDashboardRequest{
		Title: title,
		Slug:  title,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create the dashboard: %v\n", err)
		os.Exit(1)
	}

	store.AddDashboard(*created)
	fmt.Printf("Created %q (slug %s)\n", created.Title, created.Slug)
}

func init() {
	dashboardsListCmd.Flags().StringVar(&dashboardsOutputFormat, "format", "table", "Output format (table or json)")
	dashboardsCmd.AddCommand(dashboardsListCmd)
	dashboardsCmd.AddCommand(dashboardsCreateCmd)
	rootCmd.AddCommand(dashboardsCmd)
}
