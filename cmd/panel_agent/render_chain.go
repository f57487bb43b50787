package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderChainCmd = &cobra.Command{
	Use:   "render-chain <template>",
	Short: "Render a chain-of-thought reasoning template",
	Long:  "Renders the named chain-of-thought template with the supplied variable bindings. Placeholders with no binding pass through verbatim, so templates can be filled progressively.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRenderChain,
}

var renderChainVars []string

func init() {
	renderChainCmd.Flags().StringSliceVar(&renderChainVars, "var", nil, "Variable binding as key=value (repeatable)")

	rootCmd.AddCommand(renderChainCmd)
}

func runRenderChain(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	_, _, engine, err := loadComponents(cfg)
	if err != nil {
		return err
	}

	vars, err := parseKeyValues(renderChainVars)
	if err != nil {
		return err
	}

	result, err := engine.RenderChain(args[0], vars)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", result.TemplateName, result.Text)

	return nil
}
