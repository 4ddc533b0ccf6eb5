// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input checks applied before data reaches the
// vault.
//
// Core concepts:
//   - Validator: generic interface to validate a value, optionally scoped
//     to a subset of named fields.
//   - EntryValidator: rejects entries with an empty label or value.
//   - EstimateStrength: advisory zxcvbn score for a new master password.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
