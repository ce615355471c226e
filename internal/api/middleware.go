package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/liamo132/currently-server/internal/database"
)

type contextKey string

const accountKey contextKey = "account"

// WithAccount binds the authenticated account to the request context.
func WithAccount(ctx context.Context, account database.Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// AccountFromContext returns the account bound by the auth middleware.
func AccountFromContext(ctx context.Context) (database.Account, bool) {
	account, ok := ctx.Value(accountKey).(database.Account)
	return account, ok
}

func (s *CurrentlyApp) errorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				var panicError error
				switch e := err.(type) {
				case error:
					panicError = e
				default:
					panicError = fmt.Errorf("%v", e)
				}
				s.log.Printf("panic: %v", panicError)
				errResp := NewInternalServerError(panicError)
				w.Header().Set("Connection", "close")
				s.writeJson(w, errResp.StatusCode, errResp)
				return
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// authMiddleware authenticates the request before anything downstream
// runs. It extracts the bearer token, verifies it, resolves the
// subject to an account and binds that account to the request context.
// Every failure mode is a 401; a token whose subject no longer exists
// is an invalid credential, not a server error.
func (s *CurrentlyApp) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := extractBearerToken(r)
		if err != nil {
			s.rejectUnauthenticated(w)
			return
		}

		subject, err := s.tokens.Verify(tokenString)
		if err != nil {
			s.log.Printf("failed to verify token: %v", err)
			s.rejectUnauthenticated(w)
			return
		}

		account, err := s.db.GetAccountByEmail(subject)
		if err != nil {
			s.log.Printf("failed to resolve token subject: %v", err)
			s.rejectUnauthenticated(w)
			return
		}

		ctx := WithAccount(r.Context(), account)
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *CurrentlyApp) rejectUnauthenticated(w http.ResponseWriter) {
	s.metrics.RecordTokenRejection()
	errResp := NewUnauthorizedError()
	s.writeJson(w, errResp.StatusCode, errResp)
}

func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return parts[1], nil
}
