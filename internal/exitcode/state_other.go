// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package exitcode

import "os"

// FromProcessState returns the exit code of a finished process.
func FromProcessState(state *os.ProcessState) int {
	return state.ExitCode()
}
