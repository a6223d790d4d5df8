// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/constants"
	"github.com/taibuivan/strongly/internal/platform/middleware"
	requestutil "github.com/taibuivan/strongly/internal/platform/request"
	"github.com/taibuivan/strongly/internal/platform/respond"
	"github.com/taibuivan/strongly/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the account endpoints: signup, login and own-profile lookup.
type Handler struct {
	authService   *Service
	authenticator middleware.Authenticator
}

// NewHandler constructs a new [Handler]. The authenticator guards the profile route.
func NewHandler(service *Service, authenticator middleware.Authenticator) *Handler {
	return &Handler{authService: service, authenticator: authenticator}
}

// UserRoutes is mounted at /api/users.
//
// # Endpoints
//   - POST /     : Creates a new account.
//   - GET  /{id} : Returns the caller's own profile.
func (handler *Handler) UserRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.register)
	router.With(middleware.Authenticate(handler.authenticator)).Get("/{id}", handler.getUser)

	return router
}

// Routes is mounted at /api/auth.
//
// # Endpoints
//   - POST /login : Verifies credentials and returns a bearer token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", handler.login)
	return router
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Register handles the creation of a new user account.

POST /api/users

Response:
  - 201: Profile, Location: /api/users/{id}
  - 400: Missing field or password policy failure
  - 409: Username already taken
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	location := fmt.Sprintf("%s/users/%d", constants.APIPrefix, user.ID)
	respond.CreatedAt(writer, location, NewProfile(user))
}

/*
Login authenticates a user and returns a bearer token.

POST /api/auth/login

Response:
  - 200: Token
  - 400: Missing field
  - 401: Unauthorized request
  - 429: Too many failed attempts
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	for _, field := range []struct{ name, value string }{
		{FieldUsername, input.Username},
		{FieldPassword, input.Password},
	} {
		if field.value == "" {
			respond.Error(writer, request, validate.MissingField(field.name))
			return
		}
	}

	token, err := handler.authService.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, token)
}

/*
GetUser returns a profile. Callers only ever see their own account; any other
id answers exactly like a missing one.

GET /api/users/{id}
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := strconv.ParseInt(requestutil.ID(request, "id"), 10, 64)
	if err != nil || id != callerID {
		respond.Error(writer, request, apperr.NotFound("User"))
		return
	}

	user, err := handler.authService.Profile(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, NewProfile(user))
}
