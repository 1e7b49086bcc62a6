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

var uploadCategory string

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Work with your uploaded files",
}

// filesListCmd represents the files list command
var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your uploaded files",
	Run:   filesListHandler,
}

func filesListHandler(cmd *cobra.Command, args []string) {
	api, store := newEnv()
	defer store.Close()
	requireLogin(store)

	files, err := api.Files.List(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not list files: %v\n", err)
		os.Exit(1)
	}
	store.SetFiles(files)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILENAME\tCATEGORY\tSIZE")
	for _, f := range files {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", f.ID, f.Filename, f.Category, f.Size)
	}
	w.Flush()
}

// filesUploadCmd represents the files upload command
var filesUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a file",
	Args:  cobra.ExactArgs(1),
	Run:   filesUploadHandler,
}

func filesUploadHandler(cmd *cobra.Command, args []string) {
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

	uploaded, err := api.Files.Upload(context.Background(), apiclient.FileUpload{
		Filename: filepath.Base(path),
		Category: uploadCategory,
		Content:  f,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: upload failed: %v\n", err)
		os.Exit(1)
	}

	store.AddFile(*uploaded)
	fmt.Printf("Uploaded %s (id %s)\n", uploaded.Filename, uploaded.ID)
}

func init() {
	filesUploadCmd.Flags().StringVar(&uploadCategory, "category", "document", "Upload category")
	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesUploadCmd)
	rootCmd.AddCommand(filesCmd)
}
