// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-safe-vault/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one session and blocks until it ends. args are the
	// positional arguments left after flag parsing.
	Run(ctx context.Context, args []string) error
}

// Interactive is the full-screen menu. [tui.TUI] implements it.
type Interactive interface {
	Run(ctx context.Context) (tui.RunOutcome, error)
}
