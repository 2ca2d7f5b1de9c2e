package http

import (
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-site-content/internal/errors"
	"github.com/pribylovaa/go-site-content/internal/http/handlers"
	"github.com/pribylovaa/go-site-content/internal/http/middleware"
)

// schedulerCheckPath — ручное сканирование в панели планировщика (относительно BasePath).
const schedulerCheckPath = "/admin/scheduler/check"

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
	// CheckTimeout — дедлайн POST /admin/scheduler/check вместо Timeout;
	// 0 — без дедлайна мидлвара.
	CheckTimeout time.Duration

	// Validator проверяет Bearer-токены. Обязателен.
	Validator middleware.TokenValidator
	// Metrics — мидлвар метрик запросов; nil — без метрик.
	Metrics middleware.Middleware
	// MetricsHandler отдаётся на /metrics; nil — маршрут не регистрируется.
	MetricsHandler http.Handler
	// Ready — флаг готовности для /healthz; nil — всегда готов.
	Ready func() bool
}

// NewRouter собирает http.Handler: служебные эндпойнты на корне и REST API под BasePath.
func NewRouter(h *handlers.Handlers, opts Options) http.Handler {
	root := chi.NewRouter()

	root.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	root.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if opts.Ready == nil || opts.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	if opts.MetricsHandler != nil {
		root.Handle("/metrics", opts.MetricsHandler)
	}

	// Middleware (внешний -> внутренний).
	api := chi.NewRouter()
	api.Use(
		middleware.Recover(),            // ловим паники
		middleware.RequestID(),          // X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // request-scoped логгер в контексте
	)
	if opts.Metrics != nil {
		api.Use(opts.Metrics)
	}
	api.Use(middleware.AuthBearer(opts.Validator))

	basePath := opts.BasePath
	if basePath == "" {
		basePath = "/"
	}

	if opts.Timeout > 0 {
		api.Use(middleware.Timeout(opts.Timeout, middleware.RouteTimeout{
			Path:    path.Join(basePath, schedulerCheckPath),
			Timeout: opts.CheckTimeout,
		}))
	}

	api.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteStatus(w, r, http.StatusNotFound, "not_found", "route not found")
	})
	api.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteStatus(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	registerRoutes(api, h)

	root.Mount(basePath, api)

	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth
	r.Post("/auth/login", h.Login)

	// themes
	r.Get("/themes", h.Themes)

	// news
	r.Get("/news", h.ListNews)
	r.Get("/news/latest", h.LatestNews)
	r.Get("/news/{id}", h.GetNewsByID)
	r.Post("/news", h.CreateNews)
	r.Patch("/news/{id}", h.UpdateNews)
	r.Delete("/news/{id}", h.DeleteNews)

	// partners
	r.Get("/partners", h.ListPartners)
	r.Get("/partners/active", h.ActivePartners)
	r.Get("/partners/next-order", h.NextOrder)
	r.Post("/partners", h.CreatePartner)
	r.Post("/partners/reorder", h.Reorder)
	r.Patch("/partners/{id}", h.UpdatePartner)
	r.Delete("/partners/{id}", h.DeletePartner)
	r.Post("/partners/{id}/move", h.MovePartner)

	// scheduler control panel
	r.Route("/admin/scheduler", func(r chi.Router) {
		r.Use(middleware.RequireAuth())

		r.Get("/", h.SchedulerStatus)
		r.Post("/check", h.SchedulerCheck)
		r.Post("/start", h.SchedulerStart)
		r.Post("/stop", h.SchedulerStop)
		r.Delete("/pending", h.SchedulerClear)
	})
}
