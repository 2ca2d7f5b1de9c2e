package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-site-content/internal/auth"
	apierrors "github.com/pribylovaa/go-site-content/internal/errors"
	logctx "github.com/pribylovaa/go-site-content/pkg/log"
)

// TokenValidator проверяет access-токен и возвращает вызывающего.
type TokenValidator interface {
	Validate(token string) (auth.Principal, error)
}

// AuthBearer разбирает заголовок Authorization.
//
//   - заголовка нет — запрос идёт дальше анонимно;
//   - Bearer-токен валиден — Principal кладётся в контекст;
//   - заголовок есть, но токен битый/просрочен/без схемы Bearer — 401.
func AuthBearer(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			token := ""
			if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
				token = strings.TrimSpace(header[len(prefix):])
			}

			if token == "" {
				apierrors.WriteError(w, r, auth.ErrInvalidToken)
				return
			}

			p, err := v.Validate(token)
			if err != nil {
				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelWarn, "token_rejected",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()),
				)
				apierrors.WriteError(w, r, auth.ErrInvalidToken)
				return
			}

			ctx := auth.WithPrincipal(r.Context(), p)
			ctx = logctx.With(ctx, slog.String("subject", p.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth отвечает 401 запросам без Principal в контексте.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := auth.PrincipalFrom(r.Context()); !ok {
				apierrors.WriteError(w, r, auth.ErrInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
