package toolchain

import (
	"context"

	"github.com/vk/examplerun/internal/plan"
)

// Tool is the contract the runner needs from the external build/run tool.
// Implementations own every side effect (compiled artifacts, opened windows,
// console output); callers only observe success or failure.
type Tool interface {
	// CompileAll builds every example without running any of them.
	CompileAll(ctx context.Context) error

	// BuildAndRun builds the named example under the given profile, runs it,
	// and blocks until it exits. A non-empty manifest selects an alternate
	// Cargo manifest instead of the workspace default.
	BuildAndRun(ctx context.Context, example string, profile plan.Profile, manifest string) error
}
