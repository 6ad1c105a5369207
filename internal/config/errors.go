package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGeminiConfigs indicates a missing credential or endpoint
	// for the generative model.
	ErrInvalidGeminiConfigs = errors.New("invalid gemini configuration")
	// ErrUnsupportedFileFormat is returned for config files that are
	// neither JSON nor YAML.
	ErrUnsupportedFileFormat = errors.New("unsupported config file format")
)
