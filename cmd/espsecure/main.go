// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command espsecure runs the Python module "espsecure" with the interpreter
// found in the environment and exits with its exit code.
package main

import (
	"os"

	"github.com/aibor/pylaunch/internal/cmd"
)

func main() {
	os.Exit(cmd.Run("espsecure", os.Args, cmd.StdIO()))
}
