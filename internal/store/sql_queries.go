// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-learnly/models"
)

var (
	userColumns = []string{"user_id", "login", "password_hash", "created_at"}

	noteColumns = []string{
		"n.note_id",
		"n.title",
		"n.user_id",
		"u.login",
		"n.created_at",
		"n.updated_at",
	}

	quizColumns = []string{
		"q.quiz_id",
		"q.title",
		"q.note_id",
		"n.title",
		"q.user_id",
		"u.login",
		"q.created_at",
		"q.updated_at",
	}
)

const titleSearchClause = `LOWER(%s) LIKE ? ESCAPE '\'`

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("login", "password_hash").
		Values(user.Login, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

// ── notes ─────────────────────────────────────────────────────────────────────

func selectNotes(b sq.StatementBuilderType, ownerID int64) sq.SelectBuilder {
	return b.Select(noteColumns...).
		From("notes n").
		Join("users u ON u.user_id = n.user_id").
		Where(sq.Eq{"n.user_id": ownerID})
}

func buildListNotesQuery(b sq.StatementBuilderType, ownerID int64, filter models.ListFilter) (string, []any, error) {
	query := selectNotes(b, ownerID)
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where(fmt.Sprintf(titleSearchClause, "n.title"), likePattern(search))
	}

	return query.OrderBy("n.created_at DESC", "n.note_id DESC").ToSql()
}

func buildGetNoteQuery(b sq.StatementBuilderType, ownerID, noteID int64) (string, []any, error) {
	return selectNotes(b, ownerID).
		Where(sq.Eq{"n.note_id": noteID}).
		ToSql()
}

func buildCreateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert("notes").
		Columns("user_id", "title").
		Values(note.UserID, note.Title).
		Suffix("RETURNING note_id").
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Update("notes").
		Set("title", note.Title).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"note_id": note.ID}).
		Where(sq.Eq{"user_id": note.UserID}).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, ownerID, noteID int64) (string, []any, error) {
	return b.Delete("notes").
		Where(sq.Eq{"note_id": noteID}).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
}

// ── quizzes ───────────────────────────────────────────────────────────────────

func selectQuizzes(b sq.StatementBuilderType, ownerID int64) sq.SelectBuilder {
	return b.Select(quizColumns...).
		From("quizzes q").
		Join("notes n ON n.note_id = q.note_id").
		Join("users u ON u.user_id = q.user_id").
		Where(sq.Eq{"q.user_id": ownerID})
}

func buildListQuizzesQuery(b sq.StatementBuilderType, ownerID int64, filter models.ListFilter) (string, []any, error) {
	query := selectQuizzes(b, ownerID)
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where(fmt.Sprintf(titleSearchClause, "q.title"), likePattern(search))
	}

	return query.OrderBy("q.created_at DESC", "q.quiz_id DESC").ToSql()
}

func buildGetQuizQuery(b sq.StatementBuilderType, ownerID, quizID int64) (string, []any, error) {
	return selectQuizzes(b, ownerID).
		Where(sq.Eq{"q.quiz_id": quizID}).
		ToSql()
}

func buildCreateQuizQuery(b sq.StatementBuilderType, quiz models.Quiz) (string, []any, error) {
	return b.Insert("quizzes").
		Columns("note_id", "user_id", "title").
		Values(quiz.NoteID, quiz.UserID, quiz.Title).
		Suffix("RETURNING quiz_id").
		ToSql()
}

func buildUpdateQuizQuery(b sq.StatementBuilderType, quiz models.Quiz) (string, []any, error) {
	return b.Update("quizzes").
		Set("title", quiz.Title).
		Set("note_id", quiz.NoteID).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"quiz_id": quiz.ID}).
		Where(sq.Eq{"user_id": quiz.UserID}).
		ToSql()
}

func buildDeleteQuizQuery(b sq.StatementBuilderType, ownerID, quizID int64) (string, []any, error) {
	return b.Delete("quizzes").
		Where(sq.Eq{"quiz_id": quizID}).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
}

// likePattern lowercases search and escapes LIKE wildcards so that the
// search text is matched literally as a substring.
func likePattern(search string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.ToLower(search)) + "%"
}
