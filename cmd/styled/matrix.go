package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/styled/internal/inspect"
	"github.com/yacobolo/styled/internal/manifest"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [patterns...]",
	Short: "Render the full variant matrix of component definitions",
	Long: `Discover *.styled.yaml definitions and print every option combination
with its resolved class string and pass-through properties.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runMatrix,
}

func init() {
	f := matrixCmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for definition files")
}

func runMatrix(_ *cobra.Command, args []string) error {
	patterns := includePatterns(args)

	files, err := manifest.Discover(patterns)
	if err != nil {
		return fmt.Errorf("discovering definitions: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no definition files match %v", patterns)
	}

	verbose := getBoolWithFallback("verbose", "verbose", false)
	useColors := getBoolWithFallback("color", "color", false)

	for _, path := range files {
		def, err := manifest.Load(path)
		if err != nil {
			return err
		}
		component, err := def.Component()
		if err != nil {
			return err
		}

		if verbose {
			fmt.Fprintf(os.Stdout, "%s (%s)\n", path, def.Tag)
		}
		rows := inspect.BuildMatrix(component)
		inspect.RenderMatrix(os.Stdout, component.DisplayName(), rows, useColors)
	}

	return nil
}
