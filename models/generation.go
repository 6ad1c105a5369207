// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// GenerateRequest is the body of a free-form generation call.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerationResult is the outcome of a generation call.
// Exactly one of Content or Error is meaningful depending on Success.
type GenerationResult struct {
	Success bool   `json:"success"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Document is an uploaded file handed to the summarizer.
type Document struct {
	Filename string
	Content  io.ReaderAt
	Size     int64
}

// DocumentSummary is the structured summary of a document.
// Slices are always non-nil so that they serialize as JSON arrays.
type DocumentSummary struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	KeyPoints  []string `json:"key_points"`
	MainTopics []string `json:"main_topics"`
	Conclusion string   `json:"conclusion"`
}

// ErrorResponse is the JSON error body of the generation endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
