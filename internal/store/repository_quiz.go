package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/models"
)

// quizRepository is the SQL implementation of [QuizRepository].
// Quizzes are joined with their parent note to expose its title.
type quizRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuizRepository constructs a [QuizRepository] backed by db.
func NewQuizRepository(db *DB, logger *logger.Logger) QuizRepository {
	logger.Debug().Msg("creating quiz repository")
	return &quizRepository{
		db:     db,
		logger: logger,
	}
}

func (r *quizRepository) ListQuizzes(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuizzesQuery(r.db.builder, ownerID, filter)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.ListQuizzes").Int64("user_id", ownerID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.ListQuizzes").Int64("user_id", ownerID).Msg("failed to execute query for listing quizzes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	quizzes := make([]models.Quiz, 0, 16)

	for rows.Next() {
		quiz, scanErr := scanQuiz(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*quizRepository.ListQuizzes").Int64("user_id", ownerID).Msg("failed to scan quiz row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		quizzes = append(quizzes, quiz)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*quizRepository.ListQuizzes").Int64("user_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return quizzes, nil
}

// CreateQuiz inserts quiz for quiz.UserID. A missing parent note is reported
// as [ErrNoteNotFound].
func (r *quizRepository) CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateQuizQuery(r.db.builder, quiz)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.CreateQuiz").Int64("user_id", quiz.UserID).Msg("failed to build query")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var quizID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&quizID); err != nil {
		log.Err(err).Str("func", "*quizRepository.CreateQuiz").Int64("user_id", quiz.UserID).Int64("note_id", quiz.NoteID).Msg("failed to insert quiz")

		if r.db.classify(err) == ForeignKeyViolation {
			return models.Quiz{}, ErrNoteNotFound
		}
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetQuiz(ctx, quiz.UserID, quizID)
}

func (r *quizRepository) GetQuiz(ctx context.Context, ownerID, quizID int64) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetQuizQuery(r.db.builder, ownerID, quizID)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.GetQuiz").Int64("user_id", ownerID).Msg("failed to build query")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	quiz, err := scanQuiz(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Quiz{}, ErrQuizNotFound
		}

		log.Err(err).Str("func", "*quizRepository.GetQuiz").Int64("user_id", ownerID).Int64("quiz_id", quizID).Msg("failed to get quiz")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return quiz, nil
}

// UpdateQuiz replaces title and parent note of quiz.ID owned by quiz.UserID.
func (r *quizRepository) UpdateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuizQuery(r.db.builder, quiz)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.UpdateQuiz").Int64("user_id", quiz.UserID).Msg("failed to build query")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := execAffectingOne(ctx, r.db, query, args, ErrQuizNotFound); err != nil {
		log.Err(err).Str("func", "*quizRepository.UpdateQuiz").Int64("user_id", quiz.UserID).Int64("quiz_id", quiz.ID).Msg("failed to update quiz")

		if r.db.classify(err) == ForeignKeyViolation {
			return models.Quiz{}, ErrNoteNotFound
		}
		return models.Quiz{}, err
	}

	return r.GetQuiz(ctx, quiz.UserID, quiz.ID)
}

func (r *quizRepository) DeleteQuiz(ctx context.Context, ownerID, quizID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuizQuery(r.db.builder, ownerID, quizID)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.DeleteQuiz").Int64("user_id", ownerID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := execAffectingOne(ctx, r.db, query, args, ErrQuizNotFound); err != nil {
		log.Err(err).Str("func", "*quizRepository.DeleteQuiz").Int64("user_id", ownerID).Int64("quiz_id", quizID).Msg("failed to delete quiz")
		return err
	}

	return nil
}

func scanQuiz(row rowScanner) (models.Quiz, error) {
	var quiz models.Quiz
	err := row.Scan(
		&quiz.ID,
		&quiz.Title,
		&quiz.NoteID,
		&quiz.NoteTitle,
		&quiz.UserID,
		&quiz.Author,
		&quiz.CreatedAt,
		&quiz.UpdatedAt,
	)
	return quiz, err
}
