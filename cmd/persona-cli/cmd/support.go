package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openpersona/console/internal/apiclient"
)

var jobMatchFile string

var supportCmd = &cobra.Command{
	Use:   "support",
	Short: "AI career-support features",
}

// supportMatchCmd represents the support match command
var supportMatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score your profile against a job description",
	Long: `Score your profile against a job description.

Reads the job description from --file, or from stdin when no flag
is given, and prints the backend's raw match report.`,
	Run: supportMatchHandler,
}

func supportMatchHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	var description []byte
	var err error
	if jobMatchFile != "" {
		description, err = os.ReadFile(jobMatchFile)
	} else {
		description, err = readAllStdin()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read the job description: %v\n", err)
		os.Exit(1)
	}
	if len(strings.TrimSpace(string(description))) == 0 {
		fmt.Fprintln(os.Stderr, "Error: the job description is empty")
		os.Exit(1)
	}

	report, err := api.Support.JobMatch(context.Background(), apiclient.JobMatchRequest{
		JobDescription: string(description),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: job match failed: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(report)
	fmt.Println()
}

// supportAskCmd represents the support ask command
var supportAskCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask the career copilot one question",
	Args:  cobra.MinimumNArgs(1),
	Run:   supportAskHandler,
}

func supportAskHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	resp, err := api.Support.Copilot(context.Background(), apiclient.CopilotRequest{
		Message: strings.Join(args, " "),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: the copilot did not answer: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(resp.Reply)
}

func readAllStdin() ([]byte, error) {
	info, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return nil, fmt.Errorf("no --file given and stdin is a terminal")
	}
	return io.ReadAll(os.Stdin)
}

func init() {
	supportMatchCmd.Flags().StringVar(&jobMatchFile, "file", "", "Path to a job description file")
	supportCmd.AddCommand(supportMatchCmd)
	supportCmd.AddCommand(supportAskCmd)
	rootCmd.AddCommand(supportCmd)
}
