// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer builds the optional fields of create and patch inputs.

Inputs mark "field was sent" with a non-nil pointer, so code that builds an
input in Go (the seeder, tests) needs a pointer to a literal.
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

