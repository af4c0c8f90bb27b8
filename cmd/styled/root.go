package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "styled",
	Short: "Variant matrix inspector for styled component definitions",
	Long: `Resolve and inspect *.styled.yaml component definitions.
A definition declares a base tag, variants, compound variants and defaults;
styled resolves every combination the same way the library does at render
time.`,
	// Default behavior: render the matrix when no subcommand is given.
	// loadConfig must run here because matrixCmd's PreRunE is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runMatrix(matrixCmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".styled.yaml", "Config file path")

	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
