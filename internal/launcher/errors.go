// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import "errors"

// ErrNoInterpreter is returned if no Python interpreter could be found.
var ErrNoInterpreter = errors.New("no python interpreter found")

// StartError wraps errors that occur when the child process can not be
// started.
type StartError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *StartError) Error() string {
	return "start " + e.Path + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*StartError) Is(other error) bool {
	_, ok := other.(*StartError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StartError) Unwrap() error {
	return e.Err
}
