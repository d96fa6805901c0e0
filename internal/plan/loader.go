package plan

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/examplerun/internal/ctxlog"
)

//go:embed plan.hcl
var planSrc []byte

// fileRoot decodes the top-level blocks of the plan document.
type fileRoot struct {
	Steps []*stepBlock `hcl:"step,block"`
}

// evalContext exposes the symbols available to expressions in the plan
// document. Profiles are offered as an object so a step can write
// profiles.release instead of a bare string.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"profiles": cty.ObjectVal(map[string]cty.Value{
				"debug":   cty.StringVal(string(ProfileDebug)),
				"release": cty.StringVal(string(ProfileRelease)),
			}),
		},
	}
}

// Load parses and validates the plan document embedded in the binary.
func Load(ctx context.Context) ([]*Step, error) {
	return load(ctx, "plan.hcl", planSrc)
}

func load(ctx context.Context, filename string, src []byte) ([]*Step, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Plan loader started.", "file", filename)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, evalContext(), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan %s: %w", filename, diags)
	}

	if len(root.Steps) == 0 {
		return nil, fmt.Errorf("plan %s defines no steps", filename)
	}

	steps := make([]*Step, 0, len(root.Steps))
	for i, block := range root.Steps {
		step, err := block.toStep()
		if err != nil {
			return nil, fmt.Errorf("step %d (%q): %w", i, block.Name, err)
		}
		steps = append(steps, step)
	}

	logger.Debug("Plan loaded.", "step_count", len(steps))
	return steps, nil
}
