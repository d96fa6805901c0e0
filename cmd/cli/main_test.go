package main

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/examplerun/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_InvalidFlagValue(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "loud"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	t.Run("generic errors map to 1", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1, exitCode(errors.New("boom")))
	})

	t.Run("child exit status is preserved", func(t *testing.T) {
		t.Parallel()
		err := exec.Command("sh", "-c", "exit 3").Run()
		require.Error(t, err)
		assert.Equal(t, 3, exitCode(err))
	})
}
