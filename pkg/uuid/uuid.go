// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates and checks the public identifiers of workouts, exercises
and sets.

New values are Version 7: time-ordered, so inserts stay friendly to the
PostgreSQL B-tree behind each table's unique id index.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// # Checks

// Canonical returns the lower-case hyphenated form of s, or "" when s is not a UUID.
//
// PostgreSQL renders uuid columns canonically, so ids coming from clients are
// canonicalised before they are compared in memory.
func Canonical(s string) string {
	id, err := uuid.Parse(s)
	if err != nil {
		return ""
	}
	return id.String()
}
