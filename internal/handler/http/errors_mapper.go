package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/service"
	"github.com/MKhiriev/go-learnly/internal/store"
	"github.com/MKhiriev/go-learnly/internal/validators"
)

// errorStatuses is checked in order; the first sentinel an error wraps
// decides its status, so client faults come before storage failures.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{validators.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrEmptyPrompt, http.StatusBadRequest},
	{service.ErrNotPDF, http.StatusBadRequest},
	{service.ErrNoTextFound, http.StatusBadRequest},

	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{store.ErrNoUserWasFound, http.StatusUnauthorized},

	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrQuizNotFound, http.StatusNotFound},

	{store.ErrLoginAlreadyExists, http.StatusConflict},

	{service.ErrExtraction, http.StatusInternalServerError},
	{service.ErrGateway, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the HTTP status for the first sentinel in
// errorStatuses that err wraps.
func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the plain-text body sent for a 4xx error. Validation
// failures keep their field details; other errors are reduced to the
// sentinel text so internal wrapping is not exposed.
func publicMessage(err error) string {
	msg := err.Error()
	if errors.Is(err, service.ErrInvalidDataProvided) {
		if i := strings.Index(msg, service.ErrInvalidDataProvided.Error()); i >= 0 {
			return msg[i:]
		}
		return msg
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.target.Error()
		}
	}

	return msg
}

// writeError logs err and answers with a plain-text body. 5xx responses
// never carry internal details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, publicMessage(err), status)
}
