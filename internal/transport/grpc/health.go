// grpc — gRPC-транспорт content-service: health-статусы компонентов.
package grpc

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pribylovaa/go-site-content/internal/scheduler"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SchedulerService — имя сервиса в grpc.health.v1 для планировщика публикаций.
const SchedulerService = "content.scheduler"

// DefaultSyncInterval — период Run, если интервал не задан.
const DefaultSyncInterval = 5 * time.Second

// StatusSource — источник состояния планировщика.
type StatusSource interface {
	Status() scheduler.Status
}

// HealthReporter переносит состояние планировщика в health-сервер:
// SERVING, пока цикл сканирования работает, иначе NOT_SERVING.
type HealthReporter struct {
	hs  *health.Server
	src StatusSource
	log *slog.Logger

	mu   sync.Mutex
	last healthpb.HealthCheckResponse_ServingStatus
}

func NewHealthReporter(hs *health.Server, src StatusSource, log *slog.Logger) *HealthReporter {
	if log == nil {
		log = slog.Default()
	}

	return &HealthReporter{
		hs:   hs,
		src:  src,
		log:  log,
		last: healthpb.HealthCheckResponse_UNKNOWN,
	}
}

// Sync выставляет статус по текущему состоянию и возвращает его.
// Смена статуса логируется.
func (r *HealthReporter) Sync() healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if r.src.Status().Running {
		st = healthpb.HealthCheckResponse_SERVING
	}

	r.mu.Lock()
	changed := st != r.last
	r.last = st
	r.mu.Unlock()

	r.hs.SetServingStatus(SchedulerService, st)

	if changed {
		r.log.Info("health_status_changed",
			slog.String("service", SchedulerService),
			slog.String("status", st.String()),
		)
	}

	return st
}

// Run вызывает Sync сразу и далее раз в interval до отмены ctx.
func (r *HealthReporter) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	r.Sync()

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Sync()
		}
	}
}
