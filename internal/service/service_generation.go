package service

import (
	"context"

	"github.com/MKhiriev/go-learnly/internal/adapter"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/models"
)

type generationService struct {
	gateway adapter.GenerationGateway
	logger  *logger.Logger
}

func NewGenerationService(gateway adapter.GenerationGateway, logger *logger.Logger) GenerationService {
	return &generationService{
		gateway: gateway,
		logger:  logger,
	}
}

// Generate sends prompt verbatim, whitespace included. Only an empty prompt
// is returned as an error; gateway failures become an unsuccessful result carrying the
// upstream message.
func (s *generationService) Generate(ctx context.Context, prompt string) (models.GenerationResult, error) {
	if prompt == "" {
		return models.GenerationResult{}, ErrEmptyPrompt
	}

	text, err := s.gateway.Generate(ctx, prompt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("prompt_length", len(prompt)).Msg("generation failed")
		return models.GenerationResult{Success: false, Error: err.Error()}, nil
	}

	return models.GenerationResult{Success: true, Content: text}, nil
}
