// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "time"

// Principal is the authenticated identity attached to a request context.
//
// It is resolved from the users table on every request, so it always reflects
// the stored row rather than whatever a token claimed at issue time.
type Principal struct {
	UserID    int64
	Username  string
	FullName  string
	CreatedAt time.Time
}
