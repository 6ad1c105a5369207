// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Quiz is a titled quiz attached to one of the owner's notes.
type Quiz struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	NoteID int64  `json:"note"`

	// NoteTitle is the title of the parent note. Read-only for clients.
	NoteTitle string `json:"note_title"`

	UserID int64  `json:"-"`
	Author string `json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Quiz model.
func (q Quiz) TableName() string {
	return "quizzes"
}

// QuizInput holds the client-writable fields of a quiz.
type QuizInput struct {
	Title  string `json:"title" validate:"required,notblank,max=200"`
	NoteID int64  `json:"note" validate:"required,gt=0"`
}
