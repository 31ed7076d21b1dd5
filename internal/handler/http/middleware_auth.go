// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and panic-recovery
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/utils"
)

// credential is the decoded form of the "Authorization" header: exactly one
// of the two explicit variants the API accepts.
//
// A bearer token is always a token and a basic credential is always an
// email/password pair, so an empty password can never be mistaken for a
// token marker.
type credential struct {
	// bearerToken is the raw JWT of an "Authorization: Bearer <jwt>" header.
	bearerToken string

	// email and password carry the decoded pair of an
	// "Authorization: Basic base64(email:password)" header.
	email    string
	password string
}

// auth is an HTTP middleware that enforces authentication on every request
// behind it.
//
// It resolves the "Authorization" header into one of the two credential
// variants, verifies it (bearer tokens via [service.AuthService.ParseToken],
// basic credentials via [service.AuthService.Login]) and on success stores
// the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Rejections are always HTTP 401 with a structured payload. A request with
// no "Authorization" header at all fails with [ErrCredentialNotPresent];
// any header that is present but unparseable, uses an unknown scheme, or
// fails verification fails with [ErrCredentialInvalid]. Token expiry keeps
// its own message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrCredentialNotPresent).Send()
			h.respondError(w, r, ErrCredentialNotPresent)
			return
		}

		cred, err := parseAuthorizationHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.respondError(w, r, err)
			return
		}

		ctx := r.Context()

		var userID int64
		switch {
		case cred.bearerToken != "":
			token, err := h.services.AuthService.ParseToken(ctx, cred.bearerToken)
			if err != nil {
				log.Err(err).Msg("token verification failed")
				h.respondError(w, r, err)
				return
			}
			userID = token.UserID

		default:
			user, err := h.services.AuthService.Login(ctx, cred.email, cred.password)
			if err != nil {
				log.Err(err).Msg("basic credential verification failed")
				h.respondError(w, r, ErrCredentialInvalid)
				return
			}
			userID = user.UserID
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-verifying the credential.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseAuthorizationHeader decodes a raw "Authorization" header value into
// one of the two accepted credential variants.
//
// Supported formats:
//
//	Authorization: Bearer <jwt>
//	Authorization: Basic base64(email:password)
//
// Any other scheme, a missing value, an undecodable Basic payload, or an
// empty email/password yields [ErrCredentialInvalid]. Empty passwords are
// rejected here because they are never valid account passwords.
func parseAuthorizationHeader(authHeader string) (credential, error) {
	scheme, value, found := strings.Cut(authHeader, " ")
	if !found || value == "" {
		return credential{}, ErrCredentialInvalid
	}

	switch scheme {
	case "Bearer":
		return credential{bearerToken: value}, nil

	case "Basic":
		decoded, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return credential{}, ErrCredentialInvalid
		}

		email, password, found := strings.Cut(string(decoded), ":")
		if !found || email == "" || password == "" {
			return credential{}, ErrCredentialInvalid
		}

		return credential{email: email, password: password}, nil

	default:
		return credential{}, ErrCredentialInvalid
	}
}
