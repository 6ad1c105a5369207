// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns notes and quizzes.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used as the owner key of every resource.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier. It is shown to clients
	// as the author of notes and quizzes.
	Login string `json:"login" validate:"required,notblank,max=150"`

	// Password is the plaintext password received at registration or login.
	// It is never persisted and never serialized back.
	Password string `json:"password,omitempty" validate:"required,min=8,max=72"`

	// PasswordHash is the bcrypt hash of the password stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
