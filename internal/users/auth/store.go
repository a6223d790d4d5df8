// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NOT_FOUND when absent
	*/
	FindByID(context context.Context, id int64) (*User, error)

	/*
		FindByUsername returns the account with the given username (exact match).

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NOT_FOUND when absent
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		ExistsByUsername reports whether the username is already registered.
	*/
	ExistsByUsername(context context.Context, username string) (bool, error)

	/*
		Create persists a new account and fills in its generated ID and CreatedAt.

		Returns:
		  - error: apperr CONFLICT on a duplicate username, persistence failures otherwise
	*/
	Create(context context.Context, user *User) error

	/*
		ListAll returns every account in insertion order. Used by the admin export.
	*/
	ListAll(context context.Context) ([]*User, error)
}

// # Volatile Data Access

// LoginThrottle counts failed credential checks per username and locks the
// username out once the configured budget is spent.
type LoginThrottle interface {

	/*
		Locked returns the remaining lock-out, or zero when attempts are allowed.
	*/
	Locked(context context.Context, username string) (time.Duration, error)

	/*
		RecordFailure counts one failed verification, opening the window on the first one.
	*/
	RecordFailure(context context.Context, username string) error

	/*
		Reset clears the counter after a successful verification.
	*/
	Reset(context context.Context, username string) error
}
