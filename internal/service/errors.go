package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrHashingPassword     = errors.New("failed to hash password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyPrompt = errors.New("prompt is required")

	ErrNotPDF      = errors.New("file must be a PDF")
	ErrExtraction  = errors.New("error extracting text from PDF")
	ErrNoTextFound = errors.New("no text found in PDF")
	ErrGateway     = errors.New("error summarizing PDF")
)
