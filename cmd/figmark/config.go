package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/figmark/figmark"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".figmark.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	// Merge flags from the specific command and its parent (root) flags
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (FIGMARK_* prefix)
	if err := k.Load(env.Provider("FIGMARK_", ".", func(s string) string {
		// FIGMARK_COMPILE_SOURCE -> compile.source
		// FIGMARK_LINT_STRICT -> lint.strict
		// FIGMARK_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "FIGMARK_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildCompileConfig constructs the library's Config struct from koanf state.
func buildCompileConfig() figmark.Config {
	config := figmark.Config{
		SourceDir: getStringWithFallback("source", "compile.source", "design"),
		OutputDir: getStringWithFallback("output-dir", "compile.output-dir", "dist"),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("compile.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{"**/*.json"}
	}

	// Handle targets the same way
	if targets := k.Strings("target"); len(targets) > 0 {
		config.Targets = targets
	} else if targets := k.Strings("compile.target"); len(targets) > 0 {
		config.Targets = targets
	} else {
		config.Targets = []string{"html"}
	}

	return config
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() figmark.LintConfig {
	config := figmark.LintConfig{
		SourceDir:       getStringWithFallback("source", "compile.source", "design"),
		Verbose:         getBoolWithFallback("verbose", "verbose", false),
		Strict:          getBoolWithFallback("strict", "lint.strict", false),
		MaxIssues:       getIntWithFallback("max-issues", "lint.max-issues", 0),
		PrintLinterName: getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:       getBoolWithFallback("color", "color", false),
	}

	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("compile.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{"**/*.json"}
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
