// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/strongly/internal/platform/sec"
)

/*
TestPasswordHasher_RoundTrip verifies hashing is salted and verification is exact.
*/
func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("P@ssw0rd!")
	require.NoError(t, err)
	second, err := hasher.Hash("P@ssw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash carries its own salt")
	assert.True(t, hasher.Verify("P@ssw0rd!", first))
	assert.True(t, hasher.Verify("P@ssw0rd!", second))
	assert.False(t, hasher.Verify("p@ssw0rd!", first))
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)

	assert.NotPanics(t, func() {
		assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
		assert.False(t, hasher.Verify("anything", ""))
	})
}

func TestPasswordHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, sec.NewPasswordHasher(0).Cost())
	assert.Equal(t, bcrypt.DefaultCost, sec.NewPasswordHasher(99).Cost())
	assert.Equal(t, bcrypt.MinCost, sec.NewPasswordHasher(bcrypt.MinCost).Cost())
}

/*
TestTokenService_IssueVerify checks the claims survive a round trip.
*/
func TestTokenService_IssueVerify(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "strongly.test", time.Hour)
	require.NoError(t, err)

	token, err := service.Issue(42, "alice")
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "strongly.test", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenService_Failures(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "strongly.test", time.Hour)
	require.NoError(t, err)

	other, err := sec.NewTokenService("other-secret", "strongly.test", time.Hour)
	require.NoError(t, err)
	wrongSecret, err := other.Issue(1, "alice")
	require.NoError(t, err)

	expiredClaims := sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "strongly.test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: 1,
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	foreign, err := sec.NewTokenService("test-secret", "elsewhere.test", time.Hour)
	require.NoError(t, err)
	foreignIssuer, err := foreign.Issue(1, "alice")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, expiredClaims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"wrong_secret", wrongSecret, sec.ErrTokenInvalidSignature},
		{"expired", expired, sec.ErrTokenExpired},
		{"garbage", "not.a.token", sec.ErrTokenMalformed},
		{"empty", "", sec.ErrTokenMalformed},
		{"none_algorithm", noneAlg, sec.ErrTokenInvalidSignature},
		{"foreign_issuer", foreignIssuer, sec.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "strongly.test", time.Hour)
	assert.Error(t, err)
}

/*
TestParseBasicToken covers the legacy credential-pair decoding.
*/
func TestParseBasicToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		username string
		password string
		ok       bool
	}{
		{"valid", sec.BasicToken("alice", "secret"), "alice", "secret", true},
		{"colon_in_password", sec.BasicToken("alice", "se:cret"), "alice", "se:cret", true},
		{"empty_pair", sec.BasicToken("", ""), "", "", false},
		{"missing_password", sec.BasicToken("alice", ""), "", "", false},
		{"no_separator", "YWxpY2U=", "", "", false},
		{"not_base64", "%%%", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, password, ok := sec.ParseBasicToken(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.username, username)
			assert.Equal(t, tt.password, password)
		})
	}

	assert.False(t, strings.Contains(sec.BasicToken("a", "b"), ":"))
}
