// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"log/slog"
	"os"
	"slices"
)

type signaler interface {
	Signal(sig os.Signal) error
}

func handledSignals() []os.Signal {
	return slices.Concat(relayedSignals, ignoredSignals)
}

// relaySignals relays signals received on the given channel to the given
// process until exited is closed.
//
// Only [relayedSignals] are sent to the process. [ignoredSignals] are
// dropped, as the terminal sends them to the whole foreground process group
// and the child got them already.
func relaySignals(exited <-chan struct{}, signals <-chan os.Signal, proc signaler) {
	for {
		select {
		case <-exited:
			return
		case sig := <-signals:
			if !slices.Contains(relayedSignals, sig) {
				slog.Debug("Ignoring signal", slog.String("signal", sig.String()))
				continue
			}

			slog.Debug("Relaying signal", slog.String("signal", sig.String()))

			err := proc.Signal(sig)
			if err != nil {
				slog.Debug("Failed to relay signal",
					slog.String("signal", sig.String()),
					slog.Any("error", err))
			}
		}
	}
}
