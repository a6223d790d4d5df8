// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user identity for Strongly: signup, login, and the two
request authentication schemes (bearer token and legacy basic credentials).

# Architecture

  - Service: registration, credential verification and token issuance.
  - UserRepository: the credential store (PostgreSQL).
  - LoginThrottle: failed-attempt counters (Redis, or a no-op when disabled).
  - BearerAuthenticator / BasicAuthenticator: resolve the Authorization header
    into a [sec.Principal] for the platform middleware.
*/
package auth

import (
	"time"

	"github.com/taibuivan/strongly/internal/platform/sanitize"
	"github.com/taibuivan/strongly/internal/platform/sec"
)

// # Domain Entities

// User is a registered account. Usernames are unique and case-sensitive.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

// Principal converts the stored account into the identity attached to requests.
func (user *User) Principal() *sec.Principal {
	return &sec.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}

// Profile is the public, serialised view of a [User]. The hash never leaves the service.
type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfile builds the escaped public view of user.
func NewProfile(user *User) Profile {
	return Profile{
		ID:        user.ID,
		Username:  sanitize.Text(user.Username),
		FullName:  sanitize.Text(user.FullName),
		CreatedAt: user.CreatedAt,
	}
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldFullName = "full_name"
)
