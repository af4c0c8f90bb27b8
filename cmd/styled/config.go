package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".styled.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLED_* prefix)
	if err := k.Load(env.Provider("STYLED_", ".", func(s string) string {
		// STYLED_MATRIX_INCLUDE -> matrix.include
		// STYLED_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLED_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// includePatterns resolves the definition glob patterns: positional args
// win, then flag/config keys, then the default.
func includePatterns(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if patterns := k.Strings("include"); len(patterns) > 0 {
		return patterns
	}
	if patterns := k.Strings("matrix.include"); len(patterns) > 0 {
		return patterns
	}
	return []string{"**/*.styled.yaml"}
}

// getBoolWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
