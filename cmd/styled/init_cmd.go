package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a starter component definition",
	Long:  `Create a button.styled.yaml definition in the current directory as a starting point.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat("button.styled.yaml"); err == nil && !force {
			return fmt.Errorf("button.styled.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile("button.styled.yaml", []byte(starterDefinition), 0644); err != nil {
			return fmt.Errorf("writing definition file: %w", err)
		}

		fmt.Println("Created button.styled.yaml")
		return nil
	},
}

const starterDefinition = `# styled component definition
# Docs: https://github.com/yacobolo/styled

name: Button
tag: button
base:
  class: btn
  type: button

variants:
  intent:
    primary:
      class: btn-primary
    secondary:
      class: btn-secondary
  size:
    sm:
      class: btn-sm
    lg:
      class: btn-lg
  disabled:
    "true":
      class: btn-disabled
      aria-disabled: "true"

defaults:
  intent: primary

compound:
  - when:
      intent: primary
      size: lg
    props:
      class: btn-primary-lg

# Resolution order; omitted categories follow in sorted name order.
order: [intent, size, disabled]
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing definition file")
}
