package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-site-content/internal/auth"
	"github.com/pribylovaa/go-site-content/internal/cache"
	"github.com/pribylovaa/go-site-content/internal/config"
	contenthttp "github.com/pribylovaa/go-site-content/internal/http"
	"github.com/pribylovaa/go-site-content/internal/http/handlers"
	"github.com/pribylovaa/go-site-content/internal/metrics"
	"github.com/pribylovaa/go-site-content/internal/scheduler"
	"github.com/pribylovaa/go-site-content/internal/service"
	csmongo "github.com/pribylovaa/go-site-content/internal/storage/mongo"
	contentgrpc "github.com/pribylovaa/go-site-content/internal/transport/grpc"
	"github.com/pribylovaa/go-site-content/pkg/interceptors"
	logctx "github.com/pribylovaa/go-site-content/pkg/log"

	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// readCache — кэш сервиса с управлением соединением.
type readCache interface {
	service.Cache
	Close() error
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting content-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	mongoStore, err := csmongo.New(dbCtx, cfg)
	dbCancel()
	if err != nil {
		log.Error("mongo_connect_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}
	log.Info("mongo_connected")

	rc := setupCache(rootCtx, cfg, log)

	m := metrics.New(prometheus.DefaultRegisterer)

	sched := scheduler.New(mongoStore, scheduler.Options{
		Interval:       cfg.Scheduler.Interval,
		PublishTimeout: cfg.Scheduler.PublishTimeout,
		Logger:         log.With(slog.String("component", "scheduler")),
		Recorder:       m,
		OnPublish: func(ctx context.Context, id string) {
			if err := rc.InvalidateNews(ctx); err != nil {
				logctx.From(ctx).Warn("cache_invalidate_failed",
					slog.String("news_id", id),
					slog.String("err", err.Error()),
				)
			}
		},
	})

	authn := auth.New(cfg.Auth)
	svc := service.New(mongoStore, sched, rc, auth.ContextAuthorizer{}, m, *cfg)
	log.Info("service_initialized")

	if cfg.Scheduler.StartPaused {
		log.Warn("scheduler_start_paused")
	} else {
		sched.Start(rootCtx)
	}

	// HTTP: REST API, пробы, метрики.
	var ready atomic.Bool
	httpAddr := cfg.HTTP.Addr()

	h := handlers.New(handlers.Deps{
		Service:   svc,
		Auth:      authn,
		Scheduler: sched,
		RunCtx:    rootCtx,
	})
	router := contenthttp.NewRouter(h, contenthttp.Options{
		Logger:         log,
		Timeout:        cfg.Timeouts.Service,
		CheckTimeout:   cfg.Timeouts.Scan,
		BasePath:       cfg.HTTP.BasePath,
		Validator:      authn,
		Metrics:        m.HTTP,
		MetricsHandler: promhttp.Handler(),
		Ready:          ready.Load,
	})

	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("http_listen_start", "addr", httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}()

	// gRPC: health-статусы компонентов.
	grpc_prometheus.EnableHandlingTimeHistogram()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.Recover(log),
			interceptors.UnaryLoggingInterceptor(log),
			interceptors.WithTimeout(cfg.Timeouts.Service),
			grpc_prometheus.UnaryServerInterceptor,
		),
		grpc.ChainStreamInterceptor(
			grpc_prometheus.StreamServerInterceptor,
		),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)

	if cfg.Env == envLocal || cfg.Env == envDev {
		reflection.Register(grpcServer)
	}

	addr := cfg.GRPC.Addr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("grpc_listen_failed",
			slog.String("addr", addr),
			slog.String("err", err.Error()),
		)
		sched.Stop()
		rootCancel()
		_ = httpSrv.Shutdown(context.Background())
		_ = rc.Close()
		_ = mongoStore.Close(context.Background())
		os.Exit(1)
	}
	log.Info("grpc_listen_start", slog.String("addr", addr))

	grpc_prometheus.Register(grpcServer)

	reporter := contentgrpc.NewHealthReporter(hs, sched, log)
	go reporter.Run(rootCtx, contentgrpc.DefaultSyncInterval)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	ready.Store(true)

	serveErrCh := make(chan error, 1)
	go func() {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("grpc_serve_failed", slog.String("err", err.Error()))
		}
	}

	ready.Store(false)
	hs.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_failed", slog.String("err", err.Error()))
	}

	// Таймеры не переживают процесс: после рестарта их восстановит первый скан.
	sched.Stop()

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("grpc_stopped")
	case <-shutdownCtx.Done():
		log.Warn("grpc_force_stop")
		grpcServer.Stop()
	}

	shutdownCancel()
	rootCancel()

	_ = rc.Close()
	_ = mongoStore.Close(context.Background())

	log.Info("service_stopped")
	os.Exit(0)
}

// setupCache подключает Redis; пустой URL или недоступный Redis — работа без кэша.
func setupCache(ctx context.Context, cfg *config.Config, log *slog.Logger) readCache {
	if cfg.Redis.URL == "" {
		log.Info("cache_disabled")
		return cache.Nop{}
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rc, err := cache.NewRedis(cctx, cfg.Redis.URL, cfg.Redis.Prefix, cfg.Redis.TTL)
	if err != nil {
		log.Warn("redis_connect_failed", slog.String("err", err.Error()))
		return cache.Nop{}
	}

	log.Info("redis_connected")
	return rc
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
