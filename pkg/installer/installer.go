package installer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Installer executes install plans.
type Installer struct {
	runner CommandRunner
	logger *zap.Logger

	// DryRun prints each command instead of executing it.
	DryRun bool

	// Printf receives user-facing progress lines. Defaults to fmt.Printf.
	Printf func(format string, args ...any)
}

// New creates an Installer that runs commands on the real system.
func New() *Installer {
	return NewWithRunner(ExecRunner{})
}

// NewWithRunner creates an Installer with a custom command runner.
func NewWithRunner(runner CommandRunner) *Installer {
	return &Installer{
		runner: runner,
		logger: zap.NewNop(),
		Printf: func(format string, args ...any) { fmt.Printf(format, args...) },
	}
}

// SetLogger sets the structured logger used for diagnostics.
func (in *Installer) SetLogger(logger *zap.Logger) {
	if logger != nil {
		in.logger = logger
	}
}

// Run executes the plan's steps in order. The first failing step aborts the
// run; later steps are not attempted and no recovery is made. Success or
// failure of each command is delegated entirely to the package manager.
func (in *Installer) Run(ctx context.Context, plan *Plan) error {
	log := in.logger.With(zap.String("run_id", plan.RunID))

	if _, err := in.runner.LookPath("sudo"); err != nil && !in.DryRun {
		return fmt.Errorf("sudo is required but not installed: %w", err)
	}

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("install cancelled: %w", err)
		}

		if in.DryRun {
			in.Printf("%s\n", step.Command())
			continue
		}

		in.Printf("==> %s\n", step.Description())
		log.Debug("running step",
			zap.String("step", step.Description()),
			zap.String("command", step.Command()),
		)

		if err := in.runner.Run(ctx, step.Argv[0], step.Argv[1:]...); err != nil {
			log.Debug("step failed", zap.String("step", step.Description()), zap.Error(err))
			return fmt.Errorf("%s: %w", step.Description(), err)
		}
	}

	log.Debug("plan complete", zap.Int("packages", plan.PackageCount()))
	return nil
}
