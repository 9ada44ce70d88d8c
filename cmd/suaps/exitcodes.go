// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the suaps CLI.
const (
	ExitOK             = 0 // Every export was read.
	ExitInvalidArgs    = 1 // Invalid arguments, bad path or bad config.
	ExitPartialFailure = 2 // Some presence exports unreadable, partial output written.
	ExitTotalFailure   = 3 // No output produced.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitPartialFailure:
			msg = "suaps: some presence exports could not be read"
		case ExitTotalFailure:
			msg = "suaps: no dashboard produced"
		default:
			msg = "suaps: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
