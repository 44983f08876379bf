package main

import (
	"fmt"
	"os"

	"github.com/figmark/figmark"
	"github.com/figmark/figmark/internal/figma"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <file-key>",
	Short: "Download a document and its assets from the design API",
	Long: `Fetch a file's node tree, rendered assets and local variables from
the REST API and store them in the source directory as a document JSON
plus sidecar tables, ready for compiling offline.

The API token is read from the --token flag or the FIGMARK_TOKEN
environment variable.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.String("source", "design", "Source directory to store fetched documents")
	f.String("token", "", "API access token")
	f.String("api-url", "", "Override the API base URL")
}

func runFetch(cmd *cobra.Command, args []string) error {
	token := getStringWithFallback("token", "fetch.token", "")
	if token == "" {
		return fmt.Errorf("no API token (use --token or FIGMARK_TOKEN)")
	}

	client := figma.NewClient(token)
	if apiURL := getStringWithFallback("api-url", "fetch.api-url", ""); apiURL != "" {
		client = client.WithBaseURL(apiURL)
	}

	snap, err := figma.Prefetch(cmd.Context(), client, args[0])
	if err != nil {
		return fmt.Errorf("fetching %s: %w", args[0], err)
	}

	sourceDir := getStringWithFallback("source", "compile.source", "design")
	written, err := figmark.SaveSnapshot(snap, sourceDir)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		fmt.Printf("Fetched %q\n", snap.Name)
		for _, path := range written {
			fmt.Fprintf(os.Stdout, "  %s\n", path)
		}
	}

	return nil
}
