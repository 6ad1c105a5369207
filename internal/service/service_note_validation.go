package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-learnly/internal/validators"
	"github.com/MKhiriev/go-learnly/models"
)

// NoteValidationService trims and validates note input before delegating
// to the wrapped NoteService. Reads pass straight through.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService(validator validators.Validator) NoteServiceWrapper {
	return &NoteValidationService{
		validator: validator,
	}
}

func (v *NoteValidationService) List(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Note, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return v.inner.List(ctx, ownerID, filter)
}

func (v *NoteValidationService) Create(ctx context.Context, ownerID int64, input models.NoteInput) (models.Note, error) {
	input, err := v.validate(ctx, input)
	if err != nil {
		return models.Note{}, err
	}

	return v.inner.Create(ctx, ownerID, input)
}

func (v *NoteValidationService) Get(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	return v.inner.Get(ctx, ownerID, noteID)
}

func (v *NoteValidationService) Update(ctx context.Context, ownerID, noteID int64, input models.NoteInput) (models.Note, error) {
	input, err := v.validate(ctx, input)
	if err != nil {
		return models.Note{}, err
	}

	return v.inner.Update(ctx, ownerID, noteID, input)
}

func (v *NoteValidationService) Delete(ctx context.Context, ownerID, noteID int64) error {
	return v.inner.Delete(ctx, ownerID, noteID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

func (v *NoteValidationService) validate(ctx context.Context, input models.NoteInput) (models.NoteInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := v.validator.Validate(ctx, input); err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return input, nil
}
