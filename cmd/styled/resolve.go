package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/styled"
	"github.com/yacobolo/styled/internal/inspect"
	"github.com/yacobolo/styled/internal/manifest"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <definition>",
	Short: "Resolve one variant selection against a definition",
	Long: `Resolve a single selection the way the library does at render time
and print the final property set.

  styled resolve button.styled.yaml --set intent=primary --set size=lg`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runResolve,
}

func init() {
	f := resolveCmd.Flags()
	f.StringArray("set", nil, "Variant selection as category=value (repeatable)")
	f.Bool("json", false, "Emit the resolved props as JSON")
	f.Bool("html", false, "Render the resolved element as HTML")
}

func runResolve(cmd *cobra.Command, args []string) error {
	def, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	component, err := def.Component()
	if err != nil {
		return err
	}

	pairs, _ := cmd.Flags().GetStringArray("set")
	selection, err := parseSetPairs(def, pairs)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asHTML, _ := cmd.Flags().GetBool("html")
	useColors := getBoolWithFallback("color", "color", false)

	props := component.Resolve(styled.Props(selection))

	switch {
	case asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(props)
	case asHTML:
		if err := component.Render(context.Background(), os.Stdout, styled.Props(selection)); err != nil {
			return fmt.Errorf("rendering element: %w", err)
		}
		fmt.Fprintln(os.Stdout)
		return nil
	default:
		inspect.RenderProps(os.Stdout, component.DisplayName(), props, useColors)
		return nil
	}
}

// parseSetPairs splits repeated --set category=value flags and converts
// them through the definition's variant typing.
func parseSetPairs(def *manifest.Definition, pairs []string) (styled.Selection, error) {
	raw := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		category, value, found := strings.Cut(pair, "=")
		if !found || category == "" {
			return nil, fmt.Errorf("invalid --set %q (want category=value)", pair)
		}
		raw[category] = value
	}
	return def.ParseSelection(raw)
}
