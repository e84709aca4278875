// Package main provides the giftctl CLI tool for installing categorized
// OS package dependencies from the GIFT COPR repository.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for giftctl
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "giftctl",
		Short: "GIFT COPR dependency installer",
		Long: `giftctl installs categorized OS package dependencies from the GIFT COPR
repository via dnf.

Packages are grouped into four categories: runtime (always installed) plus
the independently selectable debug, development and test categories.

It supports:
  - Installing the runtime set plus any combination of optional categories
  - Listing the package catalog by category
  - Generating the equivalent standalone install script
  - Validating the package manifest
  - Checking the environment for required tooling`,
		Version: version,
	}

	rootCmd.AddCommand(
		newInstallCmd(),
		newPackagesCmd(),
		newGenerateCmd(),
		newValidateCmd(),
		newDoctorCmd(),
		newHistoryCmd(),
	)

	return rootCmd
}
