package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osdfir/giftctl/pkg/generator"
)

// newGenerateCmd creates the generate subcommand
func newGenerateCmd() *cobra.Command {
	var outputPath, manifestPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the standalone install script",
		Long: `Render the manifest as a standalone bash install script.

The script is the portable equivalent of 'giftctl install': it enables the
repository, installs the runtime packages, and honors the same
include-debug, include-development and include-test tokens.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(manifestPath, outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the script to a file instead of stdout")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to an alternate package manifest")

	return cmd
}

// runGenerate renders the install script to stdout or a file.
func runGenerate(manifestPath, outputPath string) error {
	m, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Print(generator.Render(m))
		return nil
	}

	if err := generator.Generate(m, outputPath); err != nil {
		return err
	}

	fmt.Printf("Generated: %s\n", outputPath)
	return nil
}
