// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the input of the reference API server before it
// reaches storage.
//
// A [Validator] accepts the value to check and, optionally, the names of the
// fields to restrict the check to. Without field names every rule applies.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
