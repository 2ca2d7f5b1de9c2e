// handlers — REST-обработчики content-service поверх сервисного слоя.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pribylovaa/go-site-content/internal/auth"
	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/scheduler"
	"github.com/pribylovaa/go-site-content/internal/service"
)

// maxBodyBytes ограничивает размер JSON-тела запроса.
const maxBodyBytes = 1 << 20

// ContentService — операции сервисного слоя, доступные по REST.
type ContentService interface {
	CreateNews(ctx context.Context, in service.CreateNewsInput) (*models.News, error)
	UpdateNews(ctx context.Context, id string, in service.UpdateNewsInput) (*models.News, error)
	DeleteNews(ctx context.Context, id string) error
	NewsByID(ctx context.Context, id string) (*models.News, error)
	ListNews(ctx context.Context, filter models.NewsFilter) ([]models.News, error)
	LatestNews(ctx context.Context, limit int) ([]models.News, error)

	SearchPartners(ctx context.Context, filter models.PartnerFilter) ([]models.Partner, error)
	ActivePartners(ctx context.Context) ([]models.Partner, error)
	NextOrder(ctx context.Context) (int, error)
	CreatePartner(ctx context.Context, in service.CreatePartnerInput) (*models.Partner, error)
	UpdatePartner(ctx context.Context, id string, in service.UpdatePartnerInput) (*models.Partner, error)
	DeletePartner(ctx context.Context, id string) error
	Reorder(ctx context.Context, moves []models.RankMove) error
	MovePartner(ctx context.Context, id, direction string) ([]models.Partner, error)
}

// Authenticator выпускает токены администратора.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*auth.Token, error)
}

// SchedulerControl — панель управления планировщиком.
type SchedulerControl interface {
	Start(ctx context.Context)
	Stop()
	ForceCheck(ctx context.Context) error
	Status() scheduler.Status
	Pending() []scheduler.PendingItem
	ClearAll() int
}

// Deps — зависимости обработчиков.
// RunCtx — контекст жизни процесса: в нём запускается цикл планировщика
// по POST /admin/scheduler/start (контекст запроса для этого не годится).
type Deps struct {
	Service   ContentService
	Auth      Authenticator
	Scheduler SchedulerControl
	RunCtx    context.Context
}

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	svc    ContentService
	auth   Authenticator
	sched  SchedulerControl
	runCtx context.Context
	now    func() time.Time
}

func New(d Deps) *Handlers {
	runCtx := d.RunCtx
	if runCtx == nil {
		runCtx = context.Background()
	}

	return &Handlers{
		svc:    d.Service,
		auth:   d.Auth,
		sched:  d.Scheduler,
		runCtx: runCtx,
		now:    time.Now,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: неизвестные поля и хвост после объекта запрещены.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(value); err != nil {
		return errInvalidArgument(err)
	}
	if dec.More() {
		return errInvalidArgument(errors.New("trailing data"))
	}

	return nil
}

// errInvalidArgument — локальная ошибка разбора запроса -> service.ErrInvalidArgument.
func errInvalidArgument(cause error) error {
	return fmt.Errorf("%w: %v", service.ErrInvalidArgument, cause)
}
