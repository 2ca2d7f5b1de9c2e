package middleware

import (
	"context"
	"net/http"
	"time"
)

// RouteTimeout — собственный дедлайн для конкретного пути.
// Timeout <= 0 оставляет запрос по этому пути без дедлайна мидлвара.
type RouteTimeout struct {
	Path    string
	Timeout time.Duration
}

// Timeout навешивает deadline на запрос, если его ещё нет.
// Значение <=0 делает мидлвар no-op.
// Для путей из routes (точное совпадение с r.URL.Path) действует их значение.
func Timeout(d time.Duration, routes ...RouteTimeout) Middleware {
	return func(next http.Handler) http.Handler {
		// Если d<=0, возвращаем исходный handler без обёртки.
		if d <= 0 {
			return next
		}

		byPath := make(map[string]time.Duration, len(routes))
		for _, rt := range routes {
			byPath[rt.Path] = rt.Timeout
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				next.ServeHTTP(w, r) // уважаем существующий deadline.
				return
			}

			limit := d
			if v, ok := byPath[r.URL.Path]; ok {
				limit = v
			}
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
