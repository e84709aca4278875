package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osdfir/giftctl/pkg/manifest"
	"github.com/osdfir/giftctl/pkg/tui"
)

// newPackagesCmd creates the packages subcommand
func newPackagesCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List the package catalog",
		Long:  `List all packages in the manifest, grouped by category.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPackages(manifestPath)
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to an alternate package manifest")

	return cmd
}

// runPackages lists the manifest contents by category.
func runPackages(manifestPath string) error {
	m, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	for _, c := range append([]manifest.Category{manifest.CategoryRuntime}, manifest.OptionalCategories...) {
		pkgs := m.Packages(c)

		label := fmt.Sprintf("%s (%d)", c, len(pkgs))
		if c == manifest.CategoryRuntime {
			label += " (always installed)"
		}
		fmt.Println(tui.CategoryStyle.Render(label))

		for _, name := range pkgs {
			fmt.Println(tui.PackageStyle.Render("  " + name))
		}
		fmt.Println()
	}

	return nil
}
