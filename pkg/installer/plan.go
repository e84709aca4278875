package installer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osdfir/giftctl/pkg/manifest"
)

// StepKind distinguishes repository setup from package installation.
type StepKind int

const (
	// StepEnablePlugins installs the package manager plugin that provides
	// COPR support.
	StepEnablePlugins StepKind = iota
	// StepEnableRepository enables the COPR repository.
	StepEnableRepository
	// StepInstall installs one category's package list.
	StepInstall
)

// Step is a single external command in the install sequence.
type Step struct {
	Kind     StepKind
	Category manifest.Category // set for StepInstall only
	Argv     []string          // full command line, sudo included
}

// Description returns a short human-readable summary of the step.
func (s Step) Description() string {
	switch s.Kind {
	case StepEnablePlugins:
		return "install repository plugins"
	case StepEnableRepository:
		return "enable repository"
	case StepInstall:
		// Argv is [sudo dnf install -y pkg...]; everything after the
		// flag is packages.
		n := len(s.Argv) - 4
		return fmt.Sprintf("install %s packages (%d)", s.Category, n)
	default:
		return "unknown step"
	}
}

// Command renders the step as a shell-style command string.
func (s Step) Command() string {
	return strings.Join(s.Argv, " ")
}

// Plan is the ordered, deterministic install sequence for one run.
type Plan struct {
	// RunID tags this run in logs and history records.
	RunID string

	// Selected holds the optional categories included in this plan, in
	// install order.
	Selected []manifest.Category

	Steps []Step
}

// Build creates the install plan for a manifest and a set of selected
// optional categories. Optional categories install in the fixed order
// debug, development, test regardless of how the selection was given.
// Identical input produces an identical command sequence.
func Build(m *manifest.Manifest, selected []manifest.Category) *Plan {
	plan := &Plan{RunID: uuid.NewString()}

	plan.Steps = append(plan.Steps,
		Step{Kind: StepEnablePlugins, Argv: []string{"sudo", m.Installer, "install", "-y", "dnf-plugins-core"}},
		Step{Kind: StepEnableRepository, Argv: []string{"sudo", m.Installer, "copr", "-y", "enable", m.Repository}},
	)

	plan.Steps = append(plan.Steps, installStep(m, manifest.CategoryRuntime))

	want := make(map[manifest.Category]bool, len(selected))
	for _, c := range selected {
		want[c] = true
	}
	for _, c := range manifest.OptionalCategories {
		if !want[c] {
			continue
		}
		plan.Selected = append(plan.Selected, c)
		plan.Steps = append(plan.Steps, installStep(m, c))
	}

	return plan
}

// PackageCount returns the total number of packages the plan installs.
func (p *Plan) PackageCount() int {
	total := 0
	for _, s := range p.Steps {
		if s.Kind == StepInstall {
			total += len(s.Argv) - 4
		}
	}
	return total
}

// Packages returns every package the plan installs, in install order.
func (p *Plan) Packages() []string {
	var pkgs []string
	for _, s := range p.Steps {
		if s.Kind == StepInstall {
			pkgs = append(pkgs, s.Argv[4:]...)
		}
	}
	return pkgs
}

func installStep(m *manifest.Manifest, c manifest.Category) Step {
	argv := []string{"sudo", m.Installer, "install", "-y"}
	argv = append(argv, m.Packages(c)...)
	return Step{Kind: StepInstall, Category: c, Argv: argv}
}
