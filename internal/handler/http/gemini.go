package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/service"
	"github.com/MKhiriev/go-learnly/internal/utils"
	"github.com/MKhiriev/go-learnly/models"
)

const (
	pdfFormField          = "pdf_file"
	summaryParsedHeader   = "X-Summary-Parsed"
	multipartMemoryBuffer = 1 << 20
)

// generate forwards {"prompt": ...} to the model. An upstream failure is
// answered with 500 and the unsuccessful result as body.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.GenerateRequest
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.GenerationService.Generate(r.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPrompt) {
			utils.WriteJSON(w, models.ErrorResponse{Error: msgPromptRequired}, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during generation")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}

	utils.WriteJSON(w, result, status)
}

// summarizePDF accepts a multipart upload in the pdf_file field and returns
// the five-key summary. Whether the model reply was valid JSON is reported
// in the X-Summary-Parsed header.
func (h *Handler) summarizePDF(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemoryBuffer); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Warn().Int64("limit", maxBytesErr.Limit).Msg("upload exceeds size limit")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgFileTooLarge}, http.StatusBadRequest)
			return
		}
		log.Warn().Err(err).Msg("request is not a multipart form")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgNoPDFProvided}, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(pdfFormField)
	if err != nil {
		log.Warn().Err(err).Msg("no pdf_file in form")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgNoPDFProvided}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	doc := models.Document{Filename: header.Filename, Content: file, Size: header.Size}
	summary, parsed, err := h.services.SummarizerService.Summarize(r.Context(), doc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotPDF):
			utils.WriteJSON(w, models.ErrorResponse{Error: msgFileMustBePDF}, http.StatusBadRequest)
		case errors.Is(err, service.ErrNoTextFound):
			utils.WriteJSON(w, models.ErrorResponse{Error: msgNoTextInPDF}, http.StatusBadRequest)
		default:
			log.Err(err).Str("filename", header.Filename).Msg("pdf summarization failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set(summaryParsedHeader, strconv.FormatBool(parsed))
	utils.WriteJSON(w, summary, http.StatusOK)
}
