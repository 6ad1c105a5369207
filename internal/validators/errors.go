package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidTitle    = errors.New("invalid title")
	ErrInvalidNoteID   = errors.New("invalid note")
	ErrInvalidLogin    = errors.New("invalid login")
	ErrInvalidPassword = errors.New("invalid password")
)

// fieldErrors maps JSON field names to their sentinel errors.
var fieldErrors = map[string]error{
	FieldTitle:    ErrInvalidTitle,
	FieldNoteID:   ErrInvalidNoteID,
	FieldLogin:    ErrInvalidLogin,
	FieldPassword: ErrInvalidPassword,
}
