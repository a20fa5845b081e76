// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

const (
	// EnvPython is the environment variable for an explicit interpreter.
	EnvPython = "PYLAUNCH_PYTHON"

	// EnvIDFPythonEnv is the environment variable ESP-IDF sets to its Python
	// virtual environment.
	EnvIDFPythonEnv = "IDF_PYTHON_ENV_PATH"
)

// DefaultInterpreters are looked up in PATH in the given order if no
// interpreter is configured.
var DefaultInterpreters = []string{"python3", "python"}

// LookPathFunc finds an executable. See [exec.LookPath].
type LookPathFunc func(file string) (string, error)

// FindInterpreter returns the path of the Python interpreter to use.
//
// An interpreter set with [EnvPython] must exist, otherwise an error is
// returned. Next, the interpreter of the virtual environment in
// [EnvIDFPythonEnv] is used, if present. Finally, [DefaultInterpreters] are
// looked up.
func FindInterpreter(getenv func(string) string, lookPath LookPathFunc) (string, error) {
	if python := getenv(EnvPython); python != "" {
		path, err := lookPath(python)
		if err != nil {
			return "", fmt.Errorf("%s: %w", EnvPython, err)
		}

		return path, nil
	}

	if venv := getenv(EnvIDFPythonEnv); venv != "" {
		path, err := lookPath(filepath.Join(venv, venvBinDir(), "python"))
		if err == nil {
			return path, nil
		}

		slog.Debug("Skipping python environment",
			slog.String("path", venv),
			slog.Any("error", err))
	}

	for _, name := range DefaultInterpreters {
		path, err := lookPath(name)
		if err == nil {
			return path, nil
		}
	}

	return "", ErrNoInterpreter
}

func venvBinDir() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}

	return "bin"
}
