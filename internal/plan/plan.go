package plan

import (
	"errors"
	"fmt"
)

// Kind identifies what a step asks the toolchain to do.
type Kind string

const (
	// KindBuildAll compiles every example without running anything.
	KindBuildAll Kind = "build-all"
	// KindRunExample builds and runs one named example under the debug profile.
	KindRunExample Kind = "run-example"
	// KindRunExampleRelease builds and runs one named example under the
	// release profile, from an alternate Cargo manifest.
	KindRunExampleRelease Kind = "run-example-release"
)

// Profile is the build optimization mode passed to the toolchain.
type Profile string

const (
	ProfileDebug   Profile = "debug"
	ProfileRelease Profile = "release"
)

// Step is one unit of work in the validation sweep.
type Step struct {
	// Name is the step's label in the plan document, used only for logs.
	Name string
	Kind Kind
	// Example names the example to build and run. Empty for build-all steps.
	Example string
	Profile Profile
	// Manifest is the path of an alternate Cargo manifest. Only set for
	// run-example-release steps.
	Manifest string
}

// stepBlock is the HCL shape of a single step block in the plan document.
type stepBlock struct {
	Name     string `hcl:"name,label"`
	Kind     string `hcl:"kind"`
	Example  string `hcl:"example,optional"`
	Profile  string `hcl:"profile,optional"`
	Manifest string `hcl:"manifest,optional"`
}

// toStep converts a decoded block into a Step, applying per-kind defaults
// and rejecting every combination the sweep cannot execute.
func (b *stepBlock) toStep() (*Step, error) {
	switch Profile(b.Profile) {
	case "", ProfileDebug, ProfileRelease:
	default:
		return nil, fmt.Errorf("unknown profile %q", b.Profile)
	}

	step := &Step{
		Name:     b.Name,
		Kind:     Kind(b.Kind),
		Example:  b.Example,
		Profile:  Profile(b.Profile),
		Manifest: b.Manifest,
	}

	switch step.Kind {
	case KindBuildAll:
		if step.Example != "" {
			return nil, errors.New("build-all steps must not name an example")
		}
		if step.Manifest != "" {
			return nil, errors.New("build-all steps must not set a manifest")
		}
		if step.Profile == "" {
			step.Profile = ProfileDebug
		}
		if step.Profile != ProfileDebug {
			return nil, errors.New("build-all steps always use the debug profile")
		}
	case KindRunExample:
		if step.Example == "" {
			return nil, errors.New("run-example steps require an example name")
		}
		if step.Manifest != "" {
			return nil, errors.New("run-example steps must not set a manifest")
		}
		if step.Profile == "" {
			step.Profile = ProfileDebug
		}
		if step.Profile != ProfileDebug {
			return nil, errors.New("run-example steps always use the debug profile")
		}
	case KindRunExampleRelease:
		if step.Example == "" {
			return nil, errors.New("run-example-release steps require an example name")
		}
		if step.Manifest == "" {
			return nil, errors.New("run-example-release steps require a manifest path")
		}
		if step.Profile == "" {
			step.Profile = ProfileRelease
		}
		if step.Profile != ProfileRelease {
			return nil, errors.New("run-example-release steps always use the release profile")
		}
	default:
		return nil, fmt.Errorf("unknown step kind %q", b.Kind)
	}

	return step, nil
}
