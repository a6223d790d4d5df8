// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sanitize cleans user-supplied text on the way in and escapes it on the way out.
//
// # Usage
//
// Services call [Normalize] before persisting titles and names so visually
// identical strings compare equal. Handlers call [Text] on every textual field
// of a response so stored markup never reaches a browser.
package sanitize

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// plainText allows no elements at all; tags are dropped, script and style
// bodies with them, and the remaining text is entity-escaped.
var plainText = bluemonday.StrictPolicy()

// quoteRestorer undoes the quote entities bluemonday emits for text nodes.
// The policy leaves no markup behind, so a bare quote cannot open an attribute.
var quoteRestorer = strings.NewReplacer(
	"&#39;", "'",
	"&#34;", `"`,
)

// Text strips markup from a string destined for a response body.
func Text(s string) string {
	return quoteRestorer.Replace(plainText.Sanitize(s))
}

// Normalize converts s to NFC, drops control characters and trims surrounding space.
func Normalize(s string) string {
	t := transform.Chain(norm.NFC, transform.RemoveFunc(isControl))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.TrimSpace(result)
}

// isControl reports non-printing characters other than ordinary spaces.
func isControl(r rune) bool {
	return unicode.IsControl(r)
}
