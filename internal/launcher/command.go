// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aibor/pylaunch/internal/exitcode"
)

// moduleFlag makes the interpreter run a library module as a script.
const moduleFlag = "-m"

// IO provides the standard streams for the child process.
//
// If the fields are [os.File]s, the child uses them directly. Otherwise data
// is copied by the [exec.Cmd].
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Command is a single invocation of a Python module.
type Command struct {
	// Path to the Python interpreter.
	Interpreter string
	// Name of the module to run as main program.
	Module string
	// Arguments passed to the module unaltered.
	Args []string
}

// NewCommand creates a new [Command].
func NewCommand(interpreter, module string, args []string) *Command {
	return &Command{
		Interpreter: interpreter,
		Module:      module,
		Args:        args,
	}
}

// Argv returns the arguments for the interpreter.
func (c *Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+2)
	argv = append(argv, moduleFlag, c.Module)

	return append(argv, c.Args...)
}

// String returns a human readable representation of the command.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.Args)+3)

	for _, part := range append([]string{c.Interpreter}, c.Argv()...) {
		if part == "" || strings.ContainsAny(part, " \t\n\"'") {
			part = strconv.Quote(part)
		}

		parts = append(parts, part)
	}

	return strings.Join(parts, " ")
}

// Run runs the command and waits for it to terminate.
//
// Termination signals received while the child is running are relayed to it
// or ignored, see [relaySignals]. There is no timeout.
//
// Returns nil if the child exited with exit code 0. If it returned any other
// exit code, an [exitcode.Error] is returned. If the child could not be
// started at all, a [StartError] is returned.
func (c *Command) Run(stdio IO) error {
	cmd := exec.Command(c.Interpreter, c.Argv()...)
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr

	// Register before the child is started so there is no window in which
	// a signal terminates the launcher and leaves the child behind.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, handledSignals()...)

	defer signal.Stop(signals)

	err := cmd.Start()
	if err != nil {
		return &StartError{Path: c.Interpreter, Err: err}
	}

	exited := make(chan struct{})

	var group errgroup.Group

	group.Go(func() error {
		defer close(exited)
		return cmd.Wait() //nolint:wrapcheck
	})

	group.Go(func() error {
		relaySignals(exited, signals, cmd.Process)
		return nil
	})

	err = group.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitcode.Error(exitcode.FromProcessState(exitErr.ProcessState))
	}

	return fmt.Errorf("wait: %w", err)
}
