// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package launcher

import (
	"os"

	"golang.org/x/sys/unix"
)

var (
	relayedSignals = []os.Signal{unix.SIGTERM, unix.SIGHUP}
	ignoredSignals = []os.Signal{unix.SIGINT, unix.SIGQUIT}
)
