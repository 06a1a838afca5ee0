// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package status defines the fatal/non-fatal error kinds returned across
// the core packages, and their mapping onto process exit codes.
package status

import (
	"github.com/jward-usu/pffdtd/internal/constants"

	"github.com/cpmech/gosl/chk"
)

// Kind classifies an error per spec.md §7.
type Kind int

const (
	FileOpen Kind = iota
	AllocFail
	ScenarioFormat
	SignalSetupFail
	Convergence // warn-only; never returned as a fatal Error
)

// Error is a typed, chk-friendly error carrying an exit code.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// ExitCode maps a Kind onto the process exit codes of spec.md §6.1.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case FileOpen:
		return constants.ExitFileOpen
	case AllocFail:
		return constants.ExitAllocFail
	case ScenarioFormat:
		return constants.ExitScenarioFormat
	case SignalSetupFail:
		return constants.ExitSignalSetupFail
	default:
		return constants.ExitOK
	}
}

// New builds an *Error wrapping a chk.Err-formatted message, matching the
// teacher's convention of constructing errors with printf-style messages.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: chk.Err(format, args...)}
}
