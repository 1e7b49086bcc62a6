package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openpersona/console/internal/apiclient"
)

var resumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "Work with your resumes",
}

// resumesListCmd represents the resumes list command
var resumesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your resumes",
	Run:   resumesListHandler,
}

func resumesListHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	resumes, err := api.Resume.List(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not list resumes: %v\n", err)
		os.Exit(1)
	}
	store.SetResumes(resumes)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILENAME\tSTATUS")
	for _, r := range resumes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Filename, r.Status)
	}
	w.Flush()
}

// resumesUploadCmd represents the resumes upload command
var resumesUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a resume",
	Args:  cobra.ExactArgs(1),
	Run:   resumesUploadHandler,
}

func resumesUploadHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	uploaded, err := api.Resume.Upload(context.Background(), filepath.Base(path), f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: upload failed: %v\n", err)
		os.Exit(1)
	}

	store.AddResume(*uploaded)
	fmt.Printf("Uploaded %s (id %s)\n", uploaded.Filename, uploaded.ID)
}

// resumesAnalyzeCmd represents the resumes analyze command
var resumesAnalyzeCmd = &cobra.Command{
	Use:   "analyze <id>",
	Short: "Run a backend analysis on a resume",
	Args:  cobra.ExactArgs(1),
	Run:   resumesAnalyzeHandler,
}

func resumesAnalyzeHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	result, err := api.Resume.Analyze(context.Background(), apiclient.AnalyzeRequest{ResumeID: args[0]})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(result)
	fmt.Println()
}

func init() {
	resumesCmd.AddCommand(resumesListCmd)
	resumesCmd.AddCommand(resumesUploadCmd)
	resumesCmd.AddCommand(resumesAnalyzeCmd)
	rootCmd.AddCommand(resumesCmd)
}
