package middleware

import (
	"net/http"

	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/go-site-content/internal/errors"
)

// maxRequestIDLen — входящий X-Request-Id длиннее этого считается мусором и заменяется.
const maxRequestIDLen = 128

// RequestID обеспечивает наличие X-Request-Id:
//  1. читает заголовок X-Request-Id, если он есть и разумной длины;
//  2. иначе генерирует UUID v4;
//  3. кладёт id в заголовки ответа и запроса (их читают Logging и errors.WriteError).
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(apierrors.HeaderRequestID)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
				r.Header.Set(apierrors.HeaderRequestID, id)
			}
			w.Header().Set(apierrors.HeaderRequestID, id)

			next.ServeHTTP(w, r)
		})
	}
}
