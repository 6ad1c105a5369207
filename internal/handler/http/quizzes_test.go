package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-learnly/internal/service"
	"github.com/MKhiriev/go-learnly/internal/store"
	"github.com/MKhiriev/go-learnly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz(id, noteID int64, title string) models.Quiz {
	return models.Quiz{ID: id, Title: title, NoteID: noteID, NoteTitle: "Biology", UserID: testUserID, Author: "alice"}
}

func TestListQuizzes(t *testing.T) {
	var gotFilter models.ListFilter
	svcs := newTestServices()
	svcs.QuizService = &mockQuizService{
		listFn: func(_ context.Context, ownerID int64, filter models.ListFilter) ([]models.Quiz, error) {
			gotFilter = filter
			return []models.Quiz{sampleQuiz(1, 2, "Cells")}, nil
		},
	}

	rr := doRequest(t, newTestRouter(t, svcs), http.MethodGet, "/api/quizzes?search=cel", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "cel", gotFilter.Search)

	var quizzes []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quizzes))
	require.Len(t, quizzes, 1)
	assert.EqualValues(t, 2, quizzes[0]["note"])
	assert.Equal(t, "Biology", quizzes[0]["note_title"])
	assert.Equal(t, "alice", quizzes[0]["author"])
}

func TestCreateQuiz(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createFn   func(ctx context.Context, ownerID int64, input models.QuizInput) (models.Quiz, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"title":"Cells","note":2}`,
			createFn: func(_ context.Context, _ int64, input models.QuizInput) (models.Quiz, error) {
				return sampleQuiz(1, input.NoteID, input.Title), nil
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"note":2`,
		},
		{
			name: "unknown parent note",
			body: `{"title":"Cells","note":99}`,
			createFn: func(_ context.Context, _ int64, _ models.QuizInput) (models.Quiz, error) {
				return models.Quiz{}, fmt.Errorf("check parent: %w", store.ErrNoteNotFound)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "note not found",
		},
		{
			name: "validation failure",
			body: `{"title":"Cells"}`,
			createFn: func(_ context.Context, _ int64, _ models.QuizInput) (models.Quiz, error) {
				return models.Quiz{}, fmt.Errorf("%w: note is required", service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "note is required",
		},
		{
			name:       "invalid JSON",
			body:       `[`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.QuizService = &mockQuizService{createFn: tt.createFn}

			rr := doRequest(t, newTestRouter(t, svcs), http.MethodPost, "/api/quizzes", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestGetQuiz(t *testing.T) {
	svcs := newTestServices()
	svcs.QuizService = &mockQuizService{
		getFn: func(_ context.Context, _ int64, quizID int64) (models.Quiz, error) {
			if quizID == 1 {
				return sampleQuiz(1, 2, "Cells"), nil
			}
			return models.Quiz{}, store.ErrQuizNotFound
		},
	}
	router := newTestRouter(t, svcs)

	rr := doRequest(t, router, http.MethodGet, "/api/quizzes/1", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/api/quizzes/2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "quiz not found")

	rr = doRequest(t, router, http.MethodGet, "/api/quizzes/-1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateQuiz(t *testing.T) {
	tests := []struct {
		name       string
		updateErr  error
		wantStatus int
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{name: "quiz not found", updateErr: store.ErrQuizNotFound, wantStatus: http.StatusNotFound},
		{name: "parent note not found", updateErr: store.ErrNoteNotFound, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.QuizService = &mockQuizService{
				updateFn: func(_ context.Context, _, quizID int64, input models.QuizInput) (models.Quiz, error) {
					if tt.updateErr != nil {
						return models.Quiz{}, tt.updateErr
					}
					return sampleQuiz(quizID, input.NoteID, input.Title), nil
				},
			}

			rr := doRequest(t, newTestRouter(t, svcs), http.MethodPut, "/api/quizzes/4", `{"title":"New","note":2}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeleteQuiz(t *testing.T) {
	var gotID int64
	svcs := newTestServices()
	svcs.QuizService = &mockQuizService{
		deleteFn: func(_ context.Context, _, quizID int64) error {
			gotID = quizID
			return nil
		},
	}

	rr := doRequest(t, newTestRouter(t, svcs), http.MethodDelete, "/api/quizzes/8", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(8), gotID)
}
