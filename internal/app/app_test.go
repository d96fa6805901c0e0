package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/examplerun/internal/plan"
	"github.com/vk/examplerun/internal/runner"
)

// recordingTool implements toolchain.Tool and counts invocations. When
// failOn is non-zero, that invocation (1-based) returns an error.
type recordingTool struct {
	invocations int
	failOn      int
}

func (m *recordingTool) invoke() error {
	m.invocations++
	if m.failOn == m.invocations {
		return errors.New("exit status 101")
	}
	return nil
}

func (m *recordingTool) CompileAll(ctx context.Context) error {
	return m.invoke()
}

func (m *recordingTool) BuildAndRun(ctx context.Context, example string, profile plan.Profile, manifest string) error {
	return m.invoke()
}

func newTestApp(t *testing.T, tool *recordingTool) (*App, *Config, *bytes.Buffer) {
	t.Helper()

	config, err := NewConfig(Config{LogLevel: "debug"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return NewApp(out, config, tool), config, out
}

func TestNewApp_LoadsEmbeddedPlan(t *testing.T) {
	t.Parallel()

	a, _, _ := newTestApp(t, &recordingTool{})

	steps := a.Steps()
	require.NotEmpty(t, steps)
	assert.Equal(t, plan.KindBuildAll, steps[0].Kind)
	assert.Equal(t, plan.KindRunExampleRelease, steps[len(steps)-1].Kind)
}

func TestRun_SweepSucceeds(t *testing.T) {
	t.Parallel()

	tool := &recordingTool{}
	a, config, out := newTestApp(t, tool)

	err := a.Run(context.Background(), config)
	require.NoError(t, err)

	assert.Equal(t, len(a.Steps()), tool.invocations)
	assert.Contains(t, out.String(), "All examples validated")
}

func TestRun_SweepFailsFast(t *testing.T) {
	t.Parallel()

	tool := &recordingTool{failOn: 3}
	a, config, _ := newTestApp(t, tool)

	err := a.Run(context.Background(), config)
	require.Error(t, err)
	assert.ErrorContains(t, err, "validation sweep failed")

	// The failing invocation is the last one; nothing after it ran.
	assert.Equal(t, 3, tool.invocations)

	var stepErr *runner.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 2, stepErr.Index)
}
