package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newValidateCmd creates the validate subcommand
func newValidateCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the package manifest",
		Long: `Check the package manifest for correctness: known categories, no
duplicate entries, no blank names, and alphabetized lists.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(manifestPath)
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to an alternate package manifest")

	return cmd
}

// runValidate reports manifest issues and fails if any were found.
func runValidate(manifestPath string) error {
	m, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	issues := m.Validate()
	for _, issue := range issues {
		fmt.Printf("[ERROR] %s\n", issue)
	}

	if len(issues) > 0 {
		return fmt.Errorf("validation failed with %d issue(s)", len(issues))
	}

	fmt.Println("Manifest is valid.")
	return nil
}
