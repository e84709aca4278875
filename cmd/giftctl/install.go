package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/osdfir/giftctl/pkg/history"
	"github.com/osdfir/giftctl/pkg/installer"
	"github.com/osdfir/giftctl/pkg/manifest"
	"github.com/osdfir/giftctl/pkg/tui"
)

// installOptions holds the flags for the install command.
type installOptions struct {
	includeDebug       bool
	includeDevelopment bool
	includeTest        bool
	interactive        bool
	dryRun             bool
	assumeYes          bool
	verbose            bool
	manifestPath       string
}

// newInstallCmd creates the install subcommand
func newInstallCmd() *cobra.Command {
	opts := &installOptions{}

	cmd := &cobra.Command{
		Use:   "install [tokens...]",
		Short: "Install dependency packages",
		Long: `Install the runtime dependency packages, plus any optional categories
selected via flags or free-text tokens.

Tokens mirror the historical install script: arguments containing
include-debug, include-development or include-test select the matching
category; anything else is ignored. No tokens installs the runtime set only.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runInstall(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.includeDebug, "include-debug", false, "Install debug packages")
	cmd.Flags().BoolVar(&opts.includeDevelopment, "include-development", false, "Install development packages")
	cmd.Flags().BoolVar(&opts.includeTest, "include-test", false, "Install test packages")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Pick categories interactively")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print commands without executing them")
	cmd.Flags().BoolVarP(&opts.assumeYes, "assume-yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose diagnostics")
	cmd.Flags().StringVar(&opts.manifestPath, "manifest", "", "Path to an alternate package manifest")

	return cmd
}

// selectedCategories merges explicit flags with free-text tokens.
func (o *installOptions) selectedCategories(args []string) []manifest.Category {
	want := make(map[manifest.Category]bool)
	if o.includeDebug {
		want[manifest.CategoryDebug] = true
	}
	if o.includeDevelopment {
		want[manifest.CategoryDevelopment] = true
	}
	if o.includeTest {
		want[manifest.CategoryTest] = true
	}
	for _, c := range manifest.CategoriesFromArgs(args) {
		want[c] = true
	}

	var selected []manifest.Category
	for _, c := range manifest.OptionalCategories {
		if want[c] {
			selected = append(selected, c)
		}
	}
	return selected
}

// loadManifest loads the manifest from path, or the embedded default.
func loadManifest(path string) (*manifest.Manifest, error) {
	if path != "" {
		return manifest.Load(path)
	}
	return manifest.Default()
}

// runInstall performs the install sequence: enable the repository, install
// the runtime packages, then each selected optional category, stopping at
// the first failure.
func runInstall(opts *installOptions, args []string) error {
	m, err := loadManifest(opts.manifestPath)
	if err != nil {
		return err
	}

	selected := opts.selectedCategories(args)

	if opts.interactive {
		picked, ok, err := tui.RunPicker(m, selected)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Install cancelled.")
			return nil
		}
		selected = picked
	}

	plan := installer.Build(m, selected)

	if !opts.assumeYes && !opts.dryRun {
		confirmed, err := tui.ConfirmInstall(plan.PackageCount(), m.Repository)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Install cancelled.")
			return nil
		}
	}

	in := installer.New()
	in.DryRun = opts.dryRun
	if opts.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
		in.SetLogger(logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := in.Run(ctx, plan)

	if !opts.dryRun {
		recordRun(plan, runErr)
	}

	if runErr != nil {
		return runErr
	}

	if !opts.dryRun {
		fmt.Printf("\nInstalled %d packages.\n", plan.PackageCount())
	}
	return nil
}

// recordRun appends the run to the history store. History is best-effort;
// a store failure never fails the install itself.
func recordRun(plan *installer.Plan, runErr error) {
	store, err := history.NewStore()
	if err != nil {
		fmt.Printf("Warning: could not open history store: %v\n", err)
		return
	}

	record := history.Record{
		RunID:      plan.RunID,
		Time:       time.Now().UTC(),
		Categories: plan.Selected,
		Packages:   plan.PackageCount(),
		Outcome:    history.OutcomeSuccess,
	}
	if runErr != nil {
		record.Outcome = history.OutcomeFailure
		record.Error = runErr.Error()
	}

	if err := store.Append(record); err != nil {
		fmt.Printf("Warning: could not record install run: %v\n", err)
	}
}
