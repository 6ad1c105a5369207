// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a titled study note owned by exactly one user.
type Note struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	UserID int64  `json:"-"`

	// Author is the owner's login. Read-only for clients.
	Author string `json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteInput holds the client-writable fields of a note.
// Any owner or author sent by the client is not part of it and is ignored.
type NoteInput struct {
	Title string `json:"title" validate:"required,notblank,max=200"`
}

// ListFilter narrows a listing of the caller's notes or quizzes.
type ListFilter struct {
	// Search is a case-insensitive substring matched against the title.
	// Empty means no filtering.
	Search string
}
