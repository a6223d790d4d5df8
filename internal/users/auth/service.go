// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/sanitize"
	"github.com/taibuivan/strongly/internal/platform/sec"
	"github.com/taibuivan/strongly/internal/platform/validate"
)

// # Contracts & Types

// Service implements signup, credential verification and token issuance.
//
// # Review Process
//
// This service is critical for security. Any change to hashing, the password
// policy or the lock-out rules deserves a second reviewer.
type Service struct {
	users    UserRepository
	hasher   *sec.PasswordHasher
	tokens   *sec.TokenService
	throttle LoginThrottle
	logger   *slog.Logger
}

// NewService constructs a new auth [Service]. A nil throttle disables lock-out.
func NewService(
	users UserRepository,
	hasher *sec.PasswordHasher,
	tokens *sec.TokenService,
	throttle LoginThrottle,
	logger *slog.Logger,
) *Service {
	if throttle == nil {
		throttle = NoopLoginThrottle{}
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		logger:   logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Password string
	FullName string
}

/*
Register validates, hashes, and persists a brand new user account.

Validation order follows the signup form: every required field first, then the
password policy, then username uniqueness.

Returns:
  - *User: Created entity with its generated ID
  - error: VALIDATION_ERROR, CONFLICT "Username already taken", or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input.Username = sanitize.Normalize(input.Username)
	input.FullName = sanitize.Normalize(input.FullName)

	for _, field := range []struct{ name, value string }{
		{FieldFullName, input.FullName},
		{FieldUsername, input.Username},
		{FieldPassword, input.Password},
	} {
		if field.value == "" {
			return nil, validate.MissingField(field.name)
		}
	}

	validator := &validate.Validator{}
	validator.MaxLen(FieldUsername, input.Username, UsernameMaxLen).
		MaxLen(FieldFullName, input.FullName, FullNameMaxLen).
		Password(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		return nil, promoteFirstDetail(err)
	}

	exists, err := service.users.ExistsByUsername(context, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(MessageUsernameTaken)
	}

	hashedPassword, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := &User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		FullName:     input.FullName,
	}

	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered", slog.Int64("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

// # Authentication Flow

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

/*
VerifyCredentials checks a username/password pair against the credential store.

Failed verifications count against the login throttle; once the budget is spent
every attempt answers RATE_LIMITED until the window passes, even with the right
password. Unknown usernames and wrong passwords are indistinguishable. The
username is normalised exactly as [Service.Register] stored it.

Returns:
  - *User: The verified account
  - error: UNAUTHORIZED, RATE_LIMITED, or storage errors
*/
func (service *Service) VerifyCredentials(context context.Context, username, password string) (*User, error) {
	username = sanitize.Normalize(username)
	if username == "" || password == "" {
		return nil, apperr.Unauthorized(apperr.MessageUnauthorized)
	}

	remaining, err := service.throttle.Locked(context, username)
	if err != nil {
		service.logger.Warn("login_throttle_unavailable", slog.Any("error", err))
	}
	if remaining > 0 {
		return nil, apperr.RateLimited(int(math.Ceil(remaining.Seconds())))
	}

	user, err := service.users.FindByUsername(context, username)
	if err != nil {
		if !apperr.IsNotFound(err) {
			return nil, err
		}
		service.recordFailure(context, username)
		return nil, apperr.Unauthorized(apperr.MessageUnauthorized).WithCause(err)
	}

	if !service.hasher.Verify(password, user.PasswordHash) {
		service.recordFailure(context, username)
		return nil, apperr.Unauthorized(apperr.MessageUnauthorized)
	}

	if err := service.throttle.Reset(context, username); err != nil {
		service.logger.Warn("login_throttle_reset_failed", slog.Any("error", err))
	}

	return user, nil
}

/*
Login verifies credentials and issues a bearer token.
*/
func (service *Service) Login(context context.Context, username, password string) (*Token, error) {
	user, err := service.VerifyCredentials(context, username, password)
	if err != nil {
		return nil, err
	}

	token, err := service.issue(user)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.Int64("user_id", user.ID))
	return token, nil
}

/*
IssueToken mints a bearer token for an existing username without a password.

Only the admin CLI calls this; it is never reachable over HTTP.
*/
func (service *Service) IssueToken(context context.Context, username string) (*Token, error) {
	user, err := service.users.FindByUsername(context, sanitize.Normalize(username))
	if err != nil {
		return nil, err
	}
	return service.issue(user)
}

// Profile returns the account of the given id.
func (service *Service) Profile(context context.Context, id int64) (*User, error) {
	return service.users.FindByID(context, id)
}

func (service *Service) issue(user *User) (*Token, error) {
	accessToken, err := service.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	return &Token{
		AccessToken: accessToken,
		TokenType:   TokenType,
		ExpiresIn:   int64(service.tokens.TimeToLive().Seconds()),
	}, nil
}

func (service *Service) recordFailure(context context.Context, username string) {
	if err := service.throttle.RecordFailure(context, username); err != nil {
		service.logger.Warn("login_throttle_record_failed", slog.Any("error", err))
	}
}

// promoteFirstDetail lifts the first field message to the top-level message so
// the client sees "Password must ..." rather than a generic "Validation failed".
func promoteFirstDetail(err error) error {
	appErr := apperr.As(err)
	if appErr == nil || len(appErr.Details) == 0 {
		return err
	}
	return apperr.ValidationError(appErr.Details[0].Message, appErr.Details...)
}
