package adapter

import "errors"

var (
	ErrMissingAPIKey = errors.New("gemini API key is not configured")
	ErrUpstream      = errors.New("gemini API error")
	ErrEmptyResponse = errors.New("gemini returned no text")
	ErrPromptBlocked = errors.New("gemini blocked the prompt")
	ErrRequestFailed = errors.New("gemini request failed")
	ErrDecodingReply = errors.New("failed to decode gemini reply")
)
