package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openpersona/console/internal/apiclient"
)

var (
	generatePrompt   string
	generateTemplate string
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Talk to the backend's generation agent",
}

// agentInsightsCmd represents the agent insights command
var agentInsightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show AI insights about your profile",
	Run:   agentInsightsHandler,
}

func agentInsightsHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	insights, err := api.Agent.Insights(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch insights: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(insights)
	fmt.Println()
}

// agentGenerateCmd represents the agent generate command
var agentGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Have the agent build a dashboard from your profile",
	Long: `Have the agent build a dashboard from your profile.

The agent reads your resume data and profile and assembles a full
dashboard. Pass --prompt to steer the result, or --template to pin
the visual template.`,
	Run: agentGenerateHandler,
}

func agentGenerateHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	dashboard, err := api.Agent.GenerateDashboard(context.Background(), apiclient.GenerateDashboardRequest{
		Prompt:     generatePrompt,
		TemplateID: generateTemplate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: generation failed: %v\n", err)
		os.Exit(1)
	}

	store.AddDashboard(*dashboard)
	fmt.Printf("Generated %q (slug %s)\n", dashboard.Title, dashboard.Slug)
}

func init() {
	agentGenerateCmd.Flags().StringVar(&generatePrompt, "prompt", "", "Free-form steering for the agent")
	agentGenerateCmd.Flags().StringVar(&generateTemplate, "template", "", "Template id to apply")
	agentCmd.AddCommand(agentInsightsCmd)
	agentCmd.AddCommand(agentGenerateCmd)
	rootCmd.AddCommand(agentCmd)
}
