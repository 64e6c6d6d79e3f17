// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound domain values before they reach the
// services' storage calls.
//
// A Validator accepts any supported model and an optional list of field
// names. With no fields the default set for that model is checked;
// otherwise only the named fields are, in the given order, and the first
// failing rule is returned.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
