// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build integration

package cmd_test

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/aibor/pylaunch/internal/cmd"
	"github.com/aibor/pylaunch/internal/launcher"
	"github.com/stretchr/testify/assert"
)

func TestIntegration(t *testing.T) {
	python, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not available")
	}

	tests := []struct {
		name             string
		module           string
		args             []string
		stdin            string
		expectedExitCode int
		expectedStdOut   string
		expectedStdErr   string
	}{
		{
			name:           "json tool valid input",
			module:         "json.tool",
			args:           []string{"--compact"},
			stdin:          `{ "a" : 1 }`,
			expectedStdOut: `{"a":1}`,
		},
		{
			name:             "json tool invalid input",
			module:           "json.tool",
			stdin:            `{`,
			expectedExitCode: 1,
			expectedStdErr:   "Expecting property name",
		},
		{
			name:             "unknown module",
			module:           "pylaunch_does_not_exist",
			expectedExitCode: 1,
			expectedStdErr:   "No module named pylaunch_does_not_exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(launcher.EnvPython, python)

			var stdOut, stdErr bytes.Buffer

			args := append([]string{tt.module}, tt.args...)
			exitCode := cmd.Run(tt.module, args, cmd.IO{
				Stdin:  strings.NewReader(tt.stdin),
				Stdout: &stdOut,
				Stderr: &stdErr,
			})
			assert.Equal(t, tt.expectedExitCode, exitCode, "exit code")

			assert.Contains(t, stdOut.String(), tt.expectedStdOut, "stdout")
			assert.Contains(t, stdErr.String(), tt.expectedStdErr, "stderr")
		})
	}
}
