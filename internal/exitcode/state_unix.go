// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package exitcode

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// FromProcessState returns the exit code of a finished process.
//
// If the process was terminated by a signal, the code is 128 plus the signal
// number, like shells report it.
func FromProcessState(state *os.ProcessState) int {
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return state.ExitCode()
	}

	return fromWaitStatus(unix.WaitStatus(status))
}

func fromWaitStatus(status unix.WaitStatus) int {
	if status.Signaled() {
		return signalOffset + int(status.Signal())
	}

	return status.ExitStatus()
}
