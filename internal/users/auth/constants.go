// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Authentication Constraints

const (
	// TokenType is reported to clients alongside every issued access token.
	TokenType = "Bearer"

	// UsernameMaxLen bounds the stored username.
	UsernameMaxLen = 64

	// FullNameMaxLen bounds the stored display name.
	FullNameMaxLen = 120
)

// Client-facing messages.
const (
	MessageUsernameTaken = "Username already taken"
)
