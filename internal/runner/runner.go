package runner

import (
	"context"
	"fmt"

	"github.com/vk/examplerun/internal/ctxlog"
	"github.com/vk/examplerun/internal/plan"
	"github.com/vk/examplerun/internal/toolchain"
)

// StepError reports which step of the sweep failed and carries the
// underlying toolchain error, so the entrypoint can surface the child's own
// exit status.
type StepError struct {
	Index int
	Step  *plan.Step
	Err   error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s) failed: %v", e.Index, e.Step.Name, e.Err)
}

// Unwrap exposes the underlying toolchain error to errors.Is/As.
func (e *StepError) Unwrap() error { return e.Err }

// Runner drives a plan against a toolchain. Exactly one child process is
// active at a time; each step must succeed before the next one starts.
type Runner struct {
	tool  toolchain.Tool
	steps []*plan.Step
}

// New creates a Runner for the given plan.
func New(tool toolchain.Tool, steps []*plan.Step) *Runner {
	return &Runner{tool: tool, steps: steps}
}

// Run executes every step in plan order. The first failure aborts the
// remaining steps and is returned as a *StepError. Cancellation of ctx
// between steps aborts the sweep the same way.
func (r *Runner) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for i, step := range r.steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Index: i, Step: step, Err: err}
		}

		stepLogger := logger.With("step", step.Name, "index", i, "kind", string(step.Kind))
		stepLogger.Info("▶️ Starting step")

		if err := r.runStep(ctx, step); err != nil {
			stepLogger.Error("Step failed, aborting remaining steps.", "error", err)
			return &StepError{Index: i, Step: step, Err: err}
		}

		stepLogger.Info("✅ Step finished")
	}

	return nil
}

// runStep dispatches one step to the toolchain based on its kind.
func (r *Runner) runStep(ctx context.Context, step *plan.Step) error {
	switch step.Kind {
	case plan.KindBuildAll:
		return r.tool.CompileAll(ctx)
	case plan.KindRunExample, plan.KindRunExampleRelease:
		return r.tool.BuildAndRun(ctx, step.Example, step.Profile, step.Manifest)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}
