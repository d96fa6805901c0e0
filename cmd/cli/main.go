package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/vk/examplerun/internal/app"
	"github.com/vk/examplerun/internal/cli"
	"github.com/vk/examplerun/internal/toolchain"
)

// main is the entrypoint for the examplerun application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode prefers the failing child's own exit status when one is
// available, so CI sees the same code the example produced.
func exitCode(err error) int {
	var execErr *exec.ExitError
	if errors.As(err, &execErr) && execErr.ExitCode() > 0 {
		return execErr.ExitCode()
	}
	return 1
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (a broken embedded plan), so
	// we recover here to provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	sweepApp := app.NewApp(outW, appConfig, toolchain.NewCargo())

	return sweepApp.Run(context.Background(), appConfig)
}
