// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-learnly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValidator_NoteInput(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.NoteInput
		wantErr error
	}{
		{"valid", models.NoteInput{Title: "Biology"}, nil},
		{"exactly 200 runes", models.NoteInput{Title: strings.Repeat("é", 200)}, nil},
		{"empty", models.NoteInput{Title: ""}, ErrInvalidTitle},
		{"blank", models.NoteInput{Title: "   "}, ErrInvalidTitle},
		{"too long", models.NoteInput{Title: strings.Repeat("a", 201)}, ErrInvalidTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestStructValidator_QuizInput(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), &models.QuizInput{Title: "Quiz 1", NoteID: 3})
	require.NoError(t, err)

	err = v.Validate(context.Background(), models.QuizInput{Title: "", NoteID: 0})
	assert.ErrorIs(t, err, ErrInvalidTitle)
	assert.ErrorIs(t, err, ErrInvalidNoteID)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "note")
}

func TestStructValidator_User(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.User{Login: "alice", Password: "password123"}))

	err := v.Validate(ctx, models.User{Login: "alice", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.NotErrorIs(t, err, ErrInvalidLogin)

	err = v.Validate(ctx, models.User{Login: " ", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestStructValidator_PartialFields(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	// password is invalid but only login is checked
	err := v.Validate(ctx, models.User{Login: "alice"}, FieldLogin)
	assert.NoError(t, err)

	err = v.Validate(ctx, models.User{Login: "alice"}, FieldPassword)
	assert.ErrorIs(t, err, ErrInvalidPassword)

	err = v.Validate(ctx, models.User{Login: "alice"}, "unknown")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.NoteInput)(nil)), ErrUnsupportedType)
}
