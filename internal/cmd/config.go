// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/aibor/pylaunch/internal/launcher"
)

// EnvDebug is the environment variable that enables debug output.
//
// There are no flags, as all arguments are passed to the module.
const EnvDebug = "PYLAUNCH_DEBUG"

type config struct {
	debug    bool
	getenv   func(string) string
	lookPath launcher.LookPathFunc
}

func newConfig(getenv func(string) string) (config, error) {
	cfg := config{
		getenv:   getenv,
		lookPath: exec.LookPath,
	}

	value := getenv(EnvDebug)
	if value == "" {
		return cfg, nil
	}

	debug, err := strconv.ParseBool(value)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", EnvDebug, err)
	}

	cfg.debug = debug

	return cfg, nil
}
