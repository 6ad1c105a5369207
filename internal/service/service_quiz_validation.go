package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-learnly/internal/validators"
	"github.com/MKhiriev/go-learnly/models"
)

// QuizValidationService trims and validates quiz input before delegating
// to the wrapped QuizService.
type QuizValidationService struct {
	inner     QuizService
	validator validators.Validator
}

func NewQuizValidationService(validator validators.Validator) QuizServiceWrapper {
	return &QuizValidationService{
		validator: validator,
	}
}

func (v *QuizValidationService) List(ctx context.Context, ownerID int64, filter models.ListFilter) ([]models.Quiz, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return v.inner.List(ctx, ownerID, filter)
}

func (v *QuizValidationService) Create(ctx context.Context, ownerID int64, input models.QuizInput) (models.Quiz, error) {
	input, err := v.validate(ctx, input)
	if err != nil {
		return models.Quiz{}, err
	}

	return v.inner.Create(ctx, ownerID, input)
}

func (v *QuizValidationService) Get(ctx context.Context, ownerID, quizID int64) (models.Quiz, error) {
	return v.inner.Get(ctx, ownerID, quizID)
}

func (v *QuizValidationService) Update(ctx context.Context, ownerID, quizID int64, input models.QuizInput) (models.Quiz, error) {
	input, err := v.validate(ctx, input)
	if err != nil {
		return models.Quiz{}, err
	}

	return v.inner.Update(ctx, ownerID, quizID, input)
}

func (v *QuizValidationService) Delete(ctx context.Context, ownerID, quizID int64) error {
	return v.inner.Delete(ctx, ownerID, quizID)
}

func (v *QuizValidationService) Wrap(wrapped QuizService) QuizService {
	v.inner = wrapped
	return v
}

func (v *QuizValidationService) validate(ctx context.Context, input models.QuizInput) (models.QuizInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := v.validator.Validate(ctx, input); err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return input, nil
}
