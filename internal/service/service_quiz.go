package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/store"
	"github.com/MKhiriev/go-learnly/models"
)

type quizService struct {
	quizRepository store.QuizRepository
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewQuizService needs the note repository to check that a quiz's parent
// note belongs to the caller.
func NewQuizService(quizRepository store.QuizRepository, noteRepository store.NoteRepository, logger *logger.Logger) QuizService {
	return &quizService{
		quizRepository: quizRepository,
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *quizService) List(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Quiz, error) {
	quizzes, err := s.quizRepository.ListQuizzes(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing quizzes: %w", err)
	}

	return quizzes, nil
}

func (s *quizService) Create(ctx context.Context, ownerID int64, input models.QuizInput) (models.Quiz, error) {
	if err := s.checkParentNote(ctx, ownerID, input.NoteID); err != nil {
		return models.Quiz{}, err
	}

	quiz, err := s.quizRepository.CreateQuiz(ctx, models.Quiz{Title: input.Title, NoteID: input.NoteID, UserID: ownerID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", ownerID).Int64("note_id", input.NoteID).Msg("quiz creation failed")
		return models.Quiz{}, fmt.Errorf("error creating quiz: %w", err)
	}

	return quiz, nil
}

func (s *quizService) Get(ctx context.Context, ownerID, quizID int64) (models.Quiz, error) {
	quiz, err := s.quizRepository.GetQuiz(ctx, ownerID, quizID)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("error getting quiz: %w", err)
	}

	return quiz, nil
}

func (s *quizService) Update(ctx context.Context, ownerID, quizID int64, input models.QuizInput) (models.Quiz, error) {
	if err := s.checkParentNote(ctx, ownerID, input.NoteID); err != nil {
		return models.Quiz{}, err
	}

	quiz, err := s.quizRepository.UpdateQuiz(ctx, models.Quiz{ID: quizID, Title: input.Title, NoteID: input.NoteID, UserID: ownerID})
	if err != nil {
		return models.Quiz{}, fmt.Errorf("error updating quiz: %w", err)
	}

	return quiz, nil
}

func (s *quizService) Delete(ctx context.Context, ownerID, quizID int64) error {
	if err := s.quizRepository.DeleteQuiz(ctx, ownerID, quizID); err != nil {
		return fmt.Errorf("error deleting quiz: %w", err)
	}

	return nil
}

// checkParentNote fails with store.ErrNoteNotFound unless noteID is one of
// the caller's notes.
func (s *quizService) checkParentNote(ctx context.Context, ownerID, noteID int64) error {
	if _, err := s.noteRepository.GetNote(ctx, ownerID, noteID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", ownerID).Int64("note_id", noteID).Msg("quiz references a note the caller does not own")
		return fmt.Errorf("error checking parent note: %w", err)
	}

	return nil
}
