// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package launcher

import "os"

var (
	relayedSignals = []os.Signal{}
	ignoredSignals = []os.Signal{os.Interrupt}
)
