package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-learnly/internal/adapter"
	"github.com/MKhiriev/go-learnly/internal/extractor"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/models"
)

type summarizerService struct {
	extractor extractor.TextExtractor
	gateway   adapter.GenerationGateway
	logger    *logger.Logger
}

func NewSummarizerService(textExtractor extractor.TextExtractor, gateway adapter.GenerationGateway, logger *logger.Logger) SummarizerService {
	return &summarizerService{
		extractor: textExtractor,
		gateway:   gateway,
		logger:    logger,
	}
}

// Summarize validates the file name, extracts the text, asks the model for a
// JSON summary and decodes it.
//
// Errors:
//   - ErrNotPDF if the file name does not end in .pdf; nothing is read.
//   - ErrExtraction wrapping the parser error.
//   - ErrNoTextFound if the document has no text; the model is not called.
//   - ErrGateway wrapping the upstream error.
//
// A reply that is not valid JSON is not an error: the fallback summary is
// returned with parsed set to false.
func (s *summarizerService) Summarize(ctx context.Context, doc models.Document) (models.DocumentSummary, bool, error) {
	log := logger.FromContext(ctx).With().Str("filename", doc.Filename).Logger()

	if !strings.EqualFold(filepath.Ext(doc.Filename), ".pdf") {
		return models.DocumentSummary{}, false, ErrNotPDF
	}

	text, err := s.extractor.Extract(ctx, doc.Content, doc.Size)
	if err != nil {
		log.Err(err).Msg("text extraction failed")
		return models.DocumentSummary{}, false, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Info().Msg("document has no extractable text")
		return models.DocumentSummary{}, false, ErrNoTextFound
	}

	reply, err := s.gateway.Generate(ctx, buildSummaryPrompt(text))
	if err != nil {
		log.Err(err).Msg("summary generation failed")
		return models.DocumentSummary{}, false, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	summary, parsed := decodeSummary(reply)
	if !parsed {
		log.Warn().Msg("model reply is not valid JSON, using fallback summary")
	}

	return summary, parsed, nil
}
