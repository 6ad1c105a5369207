// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-learnly/internal/config"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/service"
	"github.com/MKhiriev/go-learnly/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake implements one service interface; method fields are overridden
// per test case. Calling a method whose field is nil fails loudly.

var errNotStubbed = errors.New("method not stubbed")

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn == nil {
		return models.User{}, errNotStubbed
	}
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, errNotStubbed
	}
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{}, errNotStubbed
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, errNotStubbed
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockNoteService struct {
	listFn   func(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Note, error)
	createFn func(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error)
	getFn    func(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	updateFn func(ctx context.Context, ownerID, noteID int64, input models.NoteInput) (models.Note, error)
	deleteFn func(ctx context.Context, ownerID, noteID int64) error
}

func (m *mockNoteService) List(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Note, error) {
	if m.listFn == nil {
		return nil, errNotStubbed
	}
	return m.listFn(ctx, ownerID, filter)
}

func (m *mockNoteService) Create(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error) {
	if m.createFn == nil {
		return models.Note{}, errNotStubbed
	}
	return m.createFn(ctx, ownerID, input)
}

func (m *mockNoteService) Get(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	if m.getFn == nil {
		return models.Note{}, errNotStubbed
	}
	return m.getFn(ctx, ownerID, noteID)
}

func (m *mockNoteService) Update(ctx context.Context, ownerID, noteID int64, input models.NoteInput) (models.Note, error) {
	if m.updateFn == nil {
		return models.Note{}, errNotStubbed
	}
	return m.updateFn(ctx, ownerID, noteID, input)
}

func (m *mockNoteService) Delete(ctx context.Context, ownerID, noteID int64) error {
	if m.deleteFn == nil {
		return errNotStubbed
	}
	return m.deleteFn(ctx, ownerID, noteID)
}

type mockQuizService struct {
	listFn   func(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Quiz, error)
	createFn func(ctx context.Context, ownerID int64, input models.QuizInput) (models.Quiz, error)
	getFn    func(ctx context.Context, ownerID, quizID int64) (models.Quiz, error)
	updateFn func(ctx context.Context, ownerID, quizID int64, input models.QuizInput) (models.Quiz, error)
	deleteFn func(ctx context.Context, ownerID, quizID int64) error
}

func (m *mockQuizService) List(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Quiz, error) {
	if m.listFn == nil {
		return nil, errNotStubbed
	}
	return m.listFn(ctx, ownerID, filter)
}

func (m *mockQuizService) Create(ctx context.Context, ownerID int64, input models.QuizInput) (models.Quiz, error) {
	if m.createFn == nil {
		return models.Quiz{}, errNotStubbed
	}
	return m.createFn(ctx, ownerID, input)
}

func (m *mockQuizService) Get(ctx context.Context, ownerID, quizID int64) (models.Quiz, error) {
	if m.getFn == nil {
		return models.Quiz{}, errNotStubbed
	}
	return m.getFn(ctx, ownerID, quizID)
}

func (m *mockQuizService) Update(ctx context.Context, ownerID, quizID int64, input models.QuizInput) (models.Quiz, error) {
	if m.updateFn == nil {
		return models.Quiz{}, errNotStubbed
	}
	return m.updateFn(ctx, ownerID, quizID, input)
}

func (m *mockQuizService) Delete(ctx context.Context, ownerID, quizID int64) error {
	if m.deleteFn == nil {
		return errNotStubbed
	}
	return m.deleteFn(ctx, ownerID, quizID)
}

type mockGenerationService struct {
	generateFn func(ctx context.Context, prompt string) (models.GenerationResult, error)
}

func (m *mockGenerationService) Generate(ctx context.Context, prompt string) (models.GenerationResult, error) {
	if m.generateFn == nil {
		return models.GenerationResult{}, errNotStubbed
	}
	return m.generateFn(ctx, prompt)
}

type mockSummarizerService struct {
	summarizeFn func(ctx context.Context, doc models.Document) (models.DocumentSummary, bool, error)
}

func (m *mockSummarizerService) Summarize(ctx context.Context, doc models.Document) (models.DocumentSummary, bool, error) {
	if m.summarizeFn == nil {
		return models.DocumentSummary{}, false, errNotStubbed
	}
	return m.summarizeFn(ctx, doc)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "stub-token"
	testUserID = int64(42)
)

// newTestServices fills every service with an unconfigured fake. The auth
// fake accepts testToken as user testUserID.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != testToken {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{UserID: testUserID}, nil
			},
		},
		NoteService:       &mockNoteService{},
		QuizService:       &mockQuizService{},
		GenerationService: &mockGenerationService{},
		SummarizerService: &mockSummarizerService{},
		AppInfoService:    &mockAppInfoService{version: "test"},
	}
}

func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{HTTPAddress: ":0"}, logger.Nop())
}

// newTestRouter returns the fully wired router.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return newTestHandler(t, svcs).Init()
}

func bearer(token string) string {
	return "Bearer " + token
}
