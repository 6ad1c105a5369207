// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/models"
)

// noteRepository is the SQL implementation of [NoteRepository].
//
// Every statement carries the owner id in its WHERE clause, so a note of
// another user behaves exactly like a missing note.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// ListNotes returns the owner's notes, newest first, optionally narrowed by
// a case-insensitive title search.
func (r *noteRepository) ListNotes(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(r.db.builder, ownerID, filter)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Int64("user_id", ownerID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Int64("user_id", ownerID).Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository.ListNotes").Int64("user_id", ownerID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*noteRepository.ListNotes").Int64("user_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// CreateNote inserts note for note.UserID and returns the stored row.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(r.db.builder, note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Int64("user_id", note.UserID).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var noteID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&noteID); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Int64("user_id", note.UserID).Msg("failed to insert note")

		if r.db.classify(err) == ForeignKeyViolation {
			return models.Note{}, ErrNoUserWasFound
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetNote(ctx, note.UserID, noteID)
}

// GetNote returns one of the owner's notes.
func (r *noteRepository) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(r.db.builder, ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Int64("user_id", ownerID).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.GetNote").Int64("user_id", ownerID).Int64("note_id", noteID).Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// UpdateNote replaces the title of note.ID owned by note.UserID and bumps
// updated_at.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.db.builder, note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("user_id", note.UserID).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := execAffectingOne(ctx, r.db, query, args, ErrNoteNotFound); err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("user_id", note.UserID).Int64("note_id", note.ID).Msg("failed to update note")
		return models.Note{}, err
	}

	return r.GetNote(ctx, note.UserID, note.ID)
}

// DeleteNote removes one of the owner's notes together with its quizzes.
func (r *noteRepository) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder, ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("user_id", ownerID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := execAffectingOne(ctx, r.db, query, args, ErrNoteNotFound); err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("user_id", ownerID).Int64("note_id", noteID).Msg("failed to delete note")
		return err
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.UserID,
		&note.Author,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	return note, err
}

// execAffectingOne runs a DML statement and reports notFound when no row
// matched the WHERE clause.
func execAffectingOne(ctx context.Context, db *DB, query string, args []any, notFound error) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
