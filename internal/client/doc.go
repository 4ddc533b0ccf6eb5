// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the safevault application runtime.
//
// It builds the vault from configuration, chooses between the one-shot
// commands and the interactive menu, reports the end of the session to the
// user and maps the result to a process exit code.
package client
