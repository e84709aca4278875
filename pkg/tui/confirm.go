package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConfirmInstall prompts before running an install plan.
func ConfirmInstall(packageCount int, repository string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Install %d packages?", packageCount)).
				Description(fmt.Sprintf("This will enable the %s repository and run the package manager with sudo", repository)).
				Affirmative("Yes, install").
				Negative("No, cancel").
				Value(&confirmed),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}

	return confirmed, nil
}
