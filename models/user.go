// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an ephemeral registration record. It is built per request and
// never retained by the process; it may be mirrored to the side-store.
type User struct {
	// ID is the first 8 hex characters of MD5(Username).
	// Equal usernames always yield equal IDs.
	ID string `json:"id"`

	Username string `json:"username"`
	Email    string `json:"email"`

	// FullName is optional.
	FullName *string `json:"full_name"`

	// PasswordHash is the hex SHA-256 of the submitted password.
	// It must never leave the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// UserResponse is the public view of a [User].
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// Response returns the record without its password hash.
func (u User) Response() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}

// CurrentUserResponse is returned by the authenticated profile route.
type CurrentUserResponse struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}
