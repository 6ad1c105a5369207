package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/store"
	"github.com/MKhiriev/go-learnly/internal/utils"
	"github.com/MKhiriev/go-learnly/models"
	"github.com/go-chi/chi/v5"
)

const searchQueryParam = "search"

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	filter := models.ListFilter{Search: r.URL.Query().Get(searchQueryParam)}
	notes, err := h.services.NoteService.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var input models.NoteInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	noteID, ok := pathID(w, r, "noteID", store.ErrNoteNotFound)
	if !ok {
		return
	}

	note, err := h.services.NoteService.Get(r.Context(), userID, noteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	noteID, ok := pathID(w, r, "noteID", store.ErrNoteNotFound)
	if !ok {
		return
	}

	var input models.NoteInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), userID, noteID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	noteID, ok := pathID(w, r, "noteID", store.ErrNoteNotFound)
	if !ok {
		return
	}

	if err := h.services.NoteService.Delete(r.Context(), userID, noteID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive integer URL parameter. Anything else is answered
// as 404 with notFound's text, the same as a missing record.
func pathID(w http.ResponseWriter, r *http.Request, param string, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Debug().Str(param, chi.URLParam(r, param)).Msg("malformed id in path")
		http.Error(w, notFound.Error(), http.StatusNotFound)
		return 0, false
	}

	return id, true
}
