// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means an authorized route was reached without the
	// auth middleware having stored a caller id.
	ErrNoUserInContext = errors.New("no user id in request context")
)

// Messages of the JSON error bodies returned by the Gemini endpoints.
const (
	msgPromptRequired = "Prompt is required"
	msgNoPDFProvided  = "No PDF file provided"
	msgFileMustBePDF  = "File must be a PDF"
	msgNoTextInPDF    = "No text found in PDF"
	msgFileTooLarge   = "File is too large"
)
