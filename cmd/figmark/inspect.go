package main

import (
	"fmt"
	"os"

	"github.com/figmark/figmark"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <document.json>",
	Short: "Print the compiled markup tree of a document",
	Long: `Compile a single document and print its markup tree in an
ASCII tree layout, showing tags, declaration counts, node ids and
component bindings. Useful for debugging translation output.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		dump, err := figmark.InspectFile(args[0])
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", args[0], err)
		}
		fmt.Fprint(os.Stdout, dump)
		return nil
	},
}
