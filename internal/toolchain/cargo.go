package toolchain

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/vk/examplerun/internal/ctxlog"
	"github.com/vk/examplerun/internal/plan"
)

// Cargo drives the real cargo binary. Child stdout and stderr are forwarded
// verbatim to the runner's own streams; cargo's diagnostics are the only
// output a failing step produces.
type Cargo struct {
	bin  string
	dir  string
	outW io.Writer
	errW io.Writer
}

// NewCargo returns a Cargo that runs the "cargo" binary from PATH in the
// current working directory.
func NewCargo() *Cargo {
	return &Cargo{
		bin:  "cargo",
		outW: os.Stdout,
		errW: os.Stderr,
	}
}

// CompileAll implements Tool.
func (c *Cargo) CompileAll(ctx context.Context) error {
	return c.run(ctx, compileAllArgs()...)
}

// BuildAndRun implements Tool.
func (c *Cargo) BuildAndRun(ctx context.Context, example string, profile plan.Profile, manifest string) error {
	return c.run(ctx, buildAndRunArgs(example, profile, manifest)...)
}

func compileAllArgs() []string {
	return []string{"build", "--examples"}
}

// buildAndRunArgs maps a run step onto a cargo invocation. An alternate
// manifest means the example lives in its own crate, so the crate's default
// binary is run instead of an --example target.
func buildAndRunArgs(example string, profile plan.Profile, manifest string) []string {
	args := []string{"run"}
	if manifest != "" {
		args = append(args, "--manifest-path", manifest)
	} else {
		args = append(args, "--example", example)
	}
	if profile == plan.ProfileRelease {
		args = append(args, "--release")
	}
	return args
}

func (c *Cargo) run(ctx context.Context, args ...string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Spawning toolchain process.", "bin", c.bin, "args", args)

	cmd := exec.CommandContext(ctx, c.bin, args...)
	cmd.Dir = c.dir
	cmd.Stdout = c.outW
	cmd.Stderr = c.errW
	cmd.Stdin = os.Stdin
	return cmd.Run()
}
