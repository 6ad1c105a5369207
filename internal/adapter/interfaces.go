// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport adapters used by the service
// layer.
//
// The primary abstraction is [GenerationGateway], which decouples the
// generation and summarizer services from the hosted model API. The package
// ships a Gemini REST implementation ([NewGeminiAdapter]).
//
// Error values defined in errors.go are produced by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrUpstream] for any non-2xx reply).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/generation_gateway_mock.go -package=mock

// GenerationGateway sends a prompt to a text generation model.
type GenerationGateway interface {
	// Generate sends prompt verbatim and returns the generated text.
	// Upstream failures are returned wrapped in [ErrUpstream] with the
	// provider's message.
	Generate(ctx context.Context, prompt string) (string, error)
}
