// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"github.com/aibor/pylaunch/internal/exitcode"
	"github.com/aibor/pylaunch/internal/launcher"
)

// IO provides input and output details for the command.
type IO = launcher.IO

// StdIO returns the standard streams of the current process.
func StdIO() IO {
	return IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func run(module string, args []string, cfg config, stdio IO) error {
	interpreter, err := launcher.FindInterpreter(cfg.getenv, cfg.lookPath)
	if err != nil {
		return fmt.Errorf("find interpreter: %w", err)
	}

	// The program name is not forwarded. The child gets the interpreter and
	// module as its own.
	var forwarded []string
	if len(args) > 1 {
		forwarded = args[1:]
	}

	cmd := launcher.NewCommand(interpreter, module, forwarded)

	slog.Debug("Launching module",
		slog.String("module", module),
		slog.String("command", cmd.String()))

	return cmd.Run(stdio) //nolint:wrapcheck
}

func handleRunError(err error) int {
	// The child ran and reported its own status. Just pass it through.
	exitCode, isExitErr := exitcode.From(err)
	if isExitErr {
		slog.Debug("Module exited", slog.Int("code", exitCode))
		return exitCode
	}

	slog.Error(err.Error())

	switch {
	case errors.Is(err, launcher.ErrNoInterpreter),
		errors.Is(err, exec.ErrNotFound),
		errors.Is(err, fs.ErrNotExist):
		return exitcode.NotFound
	case errors.Is(err, fs.ErrPermission):
		return exitcode.NotExecutable
	default:
		return exitcode.Failure
	}
}

// Run is the main entry point for the launcher binaries.
//
// It runs the given Python module with all args but the first one, which is
// the program name, and returns the exit code of the module.
func Run(module string, args []string, stdio IO) int {
	cfg, cfgErr := newConfig(os.Getenv)

	setupLogging(stdio.Stderr, cfg.debug)

	if cfgErr != nil {
		slog.Warn("Invalid configuration", slog.Any("error", cfgErr))
	}

	err := run(module, args, cfg, stdio)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
