// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies against the `validate` struct
// tags declared on the models before they reach the services.
//
// Failures are reported as [FieldErrors], which match [ErrValidationFailed]
// under [errors.Is] and carry one entry per violated rule.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
