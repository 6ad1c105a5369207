package store

import (
	"context"

	"github.com/MKhiriev/go-learnly/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository persists notes. Every method filters by owner so that rows
// of other users are indistinguishable from missing rows.
type NoteRepository interface {
	ListNotes(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}

// QuizRepository persists quizzes with the same ownership rules as notes.
type QuizRepository interface {
	ListQuizzes(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Quiz, error)
	CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	GetQuiz(ctx context.Context, ownerID, quizID int64) (models.Quiz, error)
	UpdateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	DeleteQuiz(ctx context.Context, ownerID, quizID int64) error
}

// ErrorClassificator maps driver errors to dialect-independent classes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
