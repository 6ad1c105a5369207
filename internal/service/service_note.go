package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/store"
	"github.com/MKhiriev/go-learnly/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) List(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	return notes, nil
}

// Create stores a new note owned by ownerID regardless of what the client sent.
func (s *noteService) Create(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error) {
	note, err := s.noteRepository.CreateNote(ctx, models.Note{Title: input.Title, UserID: ownerID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", ownerID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	return note, nil
}

func (s *noteService) Get(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note: %w", err)
	}

	return note, nil
}

func (s *noteService) Update(ctx context.Context, ownerID, noteID int64, input models.NoteInput) (models.Note, error) {
	note, err := s.noteRepository.UpdateNote(ctx, models.Note{ID: noteID, Title: input.Title, UserID: ownerID})
	if err != nil {
		return models.Note{}, fmt.Errorf("error updating note: %w", err)
	}

	return note, nil
}

// Delete removes the note; its quizzes are removed by the foreign key cascade.
func (s *noteService) Delete(ctx context.Context, ownerID, noteID int64) error {
	if err := s.noteRepository.DeleteNote(ctx, ownerID, noteID); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	return nil
}
