package service

import (
	"context"

	"github.com/MKhiriev/go-learnly/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the caller's notes. ownerID is always the
// authenticated caller; notes of other users are reported as not found.
type NoteService interface {
	List(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Note, error)
	Create(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error)
	Get(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	Update(ctx context.Context, ownerID, noteID int64, input models.NoteInput) (models.Note, error)
	Delete(ctx context.Context, ownerID, noteID int64) error
}

// QuizService manages the caller's quizzes under the same ownership rules
// as NoteService. The parent note must belong to the caller.
type QuizService interface {
	List(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Quiz, error)
	Create(ctx context.Context, ownerID int64, input models.QuizInput) (models.Quiz, error)
	Get(ctx context.Context, ownerID, quizID int64) (models.Quiz, error)
	Update(ctx context.Context, ownerID, quizID int64, input models.QuizInput) (models.Quiz, error)
	Delete(ctx context.Context, ownerID, quizID int64) error
}

// GenerationService forwards free-form prompts to the model.
//
// An empty prompt is rejected with ErrEmptyPrompt. Upstream failures are not
// returned as errors; they are reported in the result.
type GenerationService interface {
	Generate(ctx context.Context, prompt string) (models.GenerationResult, error)
}

// SummarizerService produces a structured summary of an uploaded PDF.
// The boolean result reports whether the model reply was valid JSON.
type SummarizerService interface {
	Summarize(ctx context.Context, doc models.Document) (models.DocumentSummary, bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// QuizServiceWrapper is the QuizService counterpart of NoteServiceWrapper.
type QuizServiceWrapper interface {
	Wrap(QuizService) QuizService
}
