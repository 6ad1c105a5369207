package service

import (
	"github.com/MKhiriev/go-learnly/internal/adapter"
	"github.com/MKhiriev/go-learnly/internal/config"
	"github.com/MKhiriev/go-learnly/internal/extractor"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/store"
	"github.com/MKhiriev/go-learnly/internal/validators"
)

type Services struct {
	AuthService       AuthService
	NoteService       NoteService
	QuizService       QuizService
	GenerationService GenerationService
	SummarizerService SummarizerService
	AppInfoService    AppInfoService
}

// NewServices wires every service over the given storages and gateway.
// Note and quiz services are wrapped with input validation.
func NewServices(
	storages *store.Storages,
	gateway adapter.GenerationGateway,
	textExtractor extractor.TextExtractor,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()

	noteService := NewNoteValidationService(validator).
		Wrap(NewNoteService(storages.NoteRepository, logger))
	quizService := NewQuizValidationService(validator).
		Wrap(NewQuizService(storages.QuizRepository, storages.NoteRepository, logger))

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		NoteService:       noteService,
		QuizService:       quizService,
		GenerationService: NewGenerationService(gateway, logger),
		SummarizerService: NewSummarizerService(textExtractor, gateway, logger),
		AppInfoService:    appInfoService,
	}, nil
}
