// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request models.
//
// [Validator] is injected into the service layer, which calls it before
// touching storage. [StructValidator] implements it with
// go-playground/validator using the `validate` tags on the models in
// package models. Failures wrap [ErrInvalidInput] plus a per-field sentinel
// so callers can map them with [errors.Is].
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
