package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"trainBooker/internal/auth"
	"trainBooker/internal/lib/api/response"
	"trainBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type identityKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionVerifier
type SessionVerifier interface {
	VerifySession(token string) (auth.Identity, error)
}

// New проверяет bearer-токен и кладёт Identity в контекст запроса.
func New(log *slog.Logger, verifier SessionVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				log.Warn("missing bearer token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			identity, err := verifier.VerifySession(token)
			if err != nil {
				log.Warn("invalid session token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(auth.Identity)

	return identity, ok
}

// ContextWithIdentity используется в тестах обработчиков за middleware.
func ContextWithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}
