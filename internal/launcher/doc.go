// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package launcher runs a Python module as a child process.
//
// The child is started as "<interpreter> -m <module> [args...]" with the
// arguments forwarded verbatim. The caller blocks until the child terminates
// and gets its exit status back as [exitcode.Error].
package launcher
