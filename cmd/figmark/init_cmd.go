package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .figmark.yaml config file",
	Long:  `Create a .figmark.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".figmark.yaml"); err == nil && !force {
			return fmt.Errorf(".figmark.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".figmark.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .figmark.yaml")
		return nil
	},
}

const defaultConfig = `# figmark configuration
# Docs: https://github.com/figmark/figmark

# Shared settings
verbose: false

# Compilation settings
compile:
  source: design
  output-dir: dist
  include:
    - "**/*.json"
  target:
    - html              # html | descriptor

# Linting settings
lint:
  strict: false
  max-issues: 0         # 0 = unlimited
  print-linter-name: true

# Fetch settings
fetch:
  # token: <api token>  # or FIGMARK_TOKEN env var
  api-url: ""           # override the API base URL
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
