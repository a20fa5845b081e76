// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package launcher_test

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

func killSelf(sig string) {
	num, err := strconv.Atoi(sig)
	if err != nil {
		return
	}

	_ = unix.Kill(os.Getpid(), unix.Signal(num))

	// Delivery is asynchronous. Do not return before the signal hits.
	time.Sleep(10 * time.Second)
}
