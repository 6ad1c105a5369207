package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/store"
	"github.com/MKhiriev/go-learnly/internal/utils"
	"github.com/MKhiriev/go-learnly/models"
)

func (h *Handler) listQuizzes(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	filter := models.ListFilter{Search: r.URL.Query().Get(searchQueryParam)}
	quizzes, err := h.services.QuizService.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, quizzes, http.StatusOK)
}

func (h *Handler) createQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var input models.QuizInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	quiz, err := h.services.QuizService.Create(r.Context(), userID, input)
	if err != nil {
		writeQuizError(w, r, err)
		return
	}

	utils.WriteJSON(w, quiz, http.StatusCreated)
}

func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	quizID, ok := pathID(w, r, "quizID", store.ErrQuizNotFound)
	if !ok {
		return
	}

	quiz, err := h.services.QuizService.Get(r.Context(), userID, quizID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, quiz, http.StatusOK)
}

func (h *Handler) updateQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	quizID, ok := pathID(w, r, "quizID", store.ErrQuizNotFound)
	if !ok {
		return
	}

	var input models.QuizInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	quiz, err := h.services.QuizService.Update(r.Context(), userID, quizID, input)
	if err != nil {
		writeQuizError(w, r, err)
		return
	}

	utils.WriteJSON(w, quiz, http.StatusOK)
}

func (h *Handler) deleteQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	quizID, ok := pathID(w, r, "quizID", store.ErrQuizNotFound)
	if !ok {
		return
	}

	if err := h.services.QuizService.Delete(r.Context(), userID, quizID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeQuizError answers a missing or foreign parent note as a bad request:
// the quiz body is what is wrong, not the quiz URL.
func writeQuizError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNoteNotFound) {
		logger.FromRequest(r).Warn().Err(err).Msg("quiz references an unknown note")
		http.Error(w, store.ErrNoteNotFound.Error(), http.StatusBadRequest)
		return
	}

	writeError(w, r, err)
}
