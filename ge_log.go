// ge_log.go - GE Diagnostic Logging

/*
 ███▄ ▄███▓▓█████  ██▀███   ██▓▓█████▄  ██▓  ▄▄▄       ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒▀█▀ ██▒▓█   ▀ ▓██ ▒ ██▒▓██▒▒██▀ ██▌▓██▒ ▒████▄     ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▓██    ▓██░▒███   ▓██ ░▄█ ▒▒██▒░██   █▌▒██▒ ▒██  ▀█▄  ▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
▒██    ▒██ ▒▓█  ▄ ▒██▀▀█▄  ░██░░▓█▄   ▌░██░ ░██▄▄▄▄██ ▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
▒██▒   ░██▒░▒████▒░██▓ ▒██▒░██░░▒████▓ ░██░  ▓█   ▓██▒▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░ ▒░   ░  ░░░ ▒░ ░░ ▒▓ ░▒▓░░▓   ▒▒▓  ▒ ░▓    ▒▒   ▓▒█░░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
░  ░      ░ ░ ░  ░  ░▒ ░ ▒░ ▒ ░ ░ ▒  ▒  ▒ ░   ▒   ▒▒ ░░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
░      ░      ░     ░░   ░  ▒ ░ ░ ░  ░  ▒ ░   ░   ▒      ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
       ░      ░  ░   ░      ░     ░     ░         ░  ░         ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MeridianEngine
License: GPLv3 or later
*/

/*
ge_log.go - GE Diagnostic Logging

The GE core never fails hard: malformed command streams are recovered
locally so the emulated machine keeps running, and every such recovery is
logged here. By default log output is discarded; embedders call SetGELogger
to route it somewhere useful.
*/

package main

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopLogHandler discards all records. Enabled returns false so callers
// skip attribute formatting entirely.
type nopLogHandler struct{}

func (nopLogHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopLogHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopLogHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopLogHandler{} }
func (nopLogHandler) WithGroup(string) slog.Handler             { return nopLogHandler{} }

var geLoggerPtr atomic.Pointer[slog.Logger]

func init() {
	geLoggerPtr.Store(slog.New(nopLogHandler{}))
}

// SetGELogger configures the logger used by the GE core. Pass nil to
// restore the default silent behaviour. Safe for concurrent use.
func SetGELogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopLogHandler{})
	}
	geLoggerPtr.Store(l)
}

// geLog returns the active GE logger.
func geLog() *slog.Logger {
	return geLoggerPtr.Load()
}
