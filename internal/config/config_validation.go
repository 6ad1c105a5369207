// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. It runs after defaults are applied, so only values
// without a sensible default are required from the operator.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize <= 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: upload size must be positive and request timeout non-negative", ErrInvalidServerConfigs)
	}

	if strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrInvalidGeminiConfigs)
	}
	if cfg.Gemini.Model == "" || cfg.Gemini.BaseURL == "" {
		return fmt.Errorf("%w: model and base url are required", ErrInvalidGeminiConfigs)
	}

	return nil
}
