package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osdfir/giftctl/pkg/doctor"
	"github.com/osdfir/giftctl/pkg/tui"
)

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment",
		Long:  `Check that the package manager, the COPR plugin and sudo are available.`,
		RunE:  runDoctor,
	}
}

// runDoctor runs all environment checks and reports the results.
func runDoctor(_ *cobra.Command, _ []string) error {
	checker := doctor.NewChecker()
	checks := checker.CheckAll()

	for _, check := range checks {
		var status string
		switch check.Status {
		case doctor.StatusOK:
			status = tui.SuccessStyle.Render("ok")
		case doctor.StatusWarning:
			status = tui.WarningStyle.Render("warning")
		default:
			status = tui.ErrorStyle.Render(check.Status.String())
		}

		fmt.Printf("%-20s %s  %s\n", check.Name, status, check.Message)

		if check.Status == doctor.StatusMissing && check.FixCommand != nil {
			fmt.Printf("%-20s fix: %s\n", "", check.FixCommand.Command)
		}
	}

	if doctor.HasIssues(checks) {
		return fmt.Errorf("environment has issues, see above")
	}

	fmt.Println("\nEnvironment looks good.")
	return nil
}
