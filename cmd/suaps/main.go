// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Command suaps builds the attendance and enrollment dashboard of a
// university sports service from its CSV and XLSX exports.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atk0906/Projet-SUAPS/internal/redact"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ece *exitCodeError
		if errors.As(err, &ece) {
			if ece.msg != "" {
				fmt.Fprintln(os.Stderr, redact.String(ece.msg))
			}
			os.Exit(ece.code)
		}
		fmt.Fprintln(os.Stderr, redact.String("suaps: "+err.Error()))
		os.Exit(ExitInvalidArgs)
	}
}
