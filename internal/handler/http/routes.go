package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Post("/api/gemini/generate", h.generate)
		r.Post("/api/gemini/pdf-summarize", h.summarizePDF)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes/{noteID}", h.getNote)
		r.Put("/api/notes/{noteID}", h.updateNote)
		r.Delete("/api/notes/{noteID}", h.deleteNote)

		r.Get("/api/quizzes", h.listQuizzes)
		r.Post("/api/quizzes", h.createQuiz)
		r.Get("/api/quizzes/{quizID}", h.getQuiz)
		r.Put("/api/quizzes/{quizID}", h.updateQuiz)
		r.Delete("/api/quizzes/{quizID}", h.deleteQuiz)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
