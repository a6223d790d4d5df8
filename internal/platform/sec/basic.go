// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"encoding/base64"
	"strings"
)

// ParseBasicToken decodes a base64 "username:password" pair.
//
// Only the first colon separates the pair, so passwords may contain colons.
// ok is false when the token is not valid base64 or either half is empty.
func ParseBasicToken(token string) (username, password string, ok bool) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", "", false
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found || username == "" || password == "" {
		return "", "", false
	}

	return username, password, true
}

// BasicToken encodes a credential pair the way [ParseBasicToken] expects it.
func BasicToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
