package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Field names accepted by Validate for field-level scoping. They match the
// JSON names of the validated models.
const (
	FieldTitle    = "title"
	FieldNoteID   = "note"
	FieldLogin    = "login"
	FieldPassword = "password"
)

const notBlankTag = "notblank"

// StructValidator validates models by their `validate` struct tags.
// Error messages use JSON field names and English translations.
type StructValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewStructValidator constructs a StructValidator with the custom tags
// registered.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v, translator)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterTranslation(notBlankTag, translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fe.Field() + " cannot be blank"
		},
	)

	return &StructValidator{validate: v, translator: translator}
}

// Validate checks obj, a struct or pointer to struct. When fields are given
// only those JSON-named fields are checked.
//
// Every failing field contributes an error wrapping its sentinel (for example
// ErrInvalidTitle) and ErrInvalidInput.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) == 0 {
		err = s.validate.StructCtx(ctx, obj)
	} else {
		structFields, mapErr := goFieldNames(value.Type(), fields)
		if mapErr != nil {
			return mapErr
		}
		err = s.validate.StructPartialCtx(ctx, obj, structFields...)
	}

	return s.translate(err)
}

func (s *StructValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		sentinel, ok := fieldErrors[fe.Field()]
		if !ok {
			sentinel = ErrInvalidInput
		}
		errs = append(errs, fmt.Errorf("%w: %s", sentinel, fe.Translate(s.translator)))
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
}

// goFieldNames resolves JSON field names to the Go names StructPartial
// expects.
func goFieldNames(t reflect.Type, jsonNames []string) ([]string, error) {
	result := make([]string, 0, len(jsonNames))
	for _, name := range jsonNames {
		found := false
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == name {
				result = append(result, f.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	return result, nil
}
