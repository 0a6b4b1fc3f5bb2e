// Package auth reads the caller's bearer token. Tokens are issued elsewhere; this
// service only needs the subject and forwards the raw token upstream.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"trackit/internal/pkg/identity"
	"trackit/pkg/logger"
)

var (
	ErrMalformedHeader = errors.New("authorization header must be a bearer token")
	ErrMissingSubject  = errors.New("token has no subject")
)

// Middleware lets anonymous requests through. When a token is present its sub
// claim becomes the user id. With an empty secret the signature is not checked
// because the GraphQL server verifies the forwarded token itself; such an identity
// is never marked verified.
func Middleware(log handlerLogger, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := bearerToken(header)
			if err == nil {
				var subject string
				subject, err = Subject(raw, secret)
				if err == nil {
					ctx := identity.WithToken(r.Context(), raw)
					ctx = identity.WithUserID(ctx, subject)
					if secret != "" {
						ctx = identity.WithVerified(ctx)
					}
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			log.With(
				logger.NewField("error", err),
				logger.NewField("path", r.URL.Path),
			).Warn("rejected bearer token")
			writeError(w, http.StatusUnauthorized, "invalid bearer token")
		})
	}
}

// RequireAdmin answers 403 unless the caller's verified user id equals adminUserID.
// An empty adminUserID closes the route for everyone.
func RequireAdmin(adminUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := identity.UserID(r.Context())
			if !ok || adminUserID == "" || userID != adminUserID || !identity.Verified(r.Context()) {
				writeError(w, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Subject extracts the sub claim, verifying an HS256 signature when secret is set.
func Subject(raw, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	if secret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
			return "", fmt.Errorf("parse token: %w", err)
		}
	} else {
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			return "", fmt.Errorf("verify token: %w", err)
		}
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMalformedHeader
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMalformedHeader
	}
	return token, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `{"error":%q}`, message)
}
