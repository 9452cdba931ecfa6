// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the run logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "fluiddoc",
		Level:  parsed,
	}), nil
}

// orDiscard returns logger or a logger that drops every record.
func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}

	return log.New(io.Discard)
}
