// service содержит бизнес-логику content-сервиса: новости и партнёры.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-site-content/internal/config"
	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/storage"
)

var (
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized — вызывающий не авторизован для мутации.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInternal — внутренняя ошибка (стораж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Scheduler — то, что сервису нужно от планировщика публикаций.
type Scheduler interface {
	ScheduleItem(ctx context.Context, id string, snapshot models.News, target time.Time) error
	CancelItem(id string)
}

// Cache — кэш публичных выборок. Ошибки кэша не ломают запрос.
type Cache interface {
	LatestNews(ctx context.Context, limit int) ([]models.News, bool, error)
	SetLatestNews(ctx context.Context, limit int, items []models.News) error
	ActivePartners(ctx context.Context) ([]models.Partner, bool, error)
	SetActivePartners(ctx context.Context, items []models.Partner) error
	InvalidateNews(ctx context.Context) error
	InvalidatePartners(ctx context.Context) error
}

// Authorizer сообщает, разрешены ли вызывающему мутации.
type Authorizer interface {
	Authorized(ctx context.Context) bool
}

// Recorder — метрики сервисного слоя.
type Recorder interface {
	IncRankRepair()
}

// Service — описывает бизнес-логику content-service.
type Service struct {
	storage storage.Storage
	sched   Scheduler
	cache   Cache
	authz   Authorizer
	rec     Recorder
	cfg     config.Config
	now     func() time.Time
}

// New создает новый экземпляр Service.
// nil-зависимости cache и rec заменяются пустыми реализациями.
func New(storage storage.Storage, sched Scheduler, cache Cache, authz Authorizer, rec Recorder, cfg config.Config) *Service {
	if cache == nil {
		cache = nopCache{}
	}
	if rec == nil {
		rec = nopRecorder{}
	}

	return &Service{
		storage: storage,
		sched:   sched,
		cache:   cache,
		authz:   authz,
		rec:     rec,
		cfg:     cfg,
		now:     time.Now,
	}
}

// authorized — проверка мутаций; отсутствие Authorizer запрещает всё.
func (s *Service) authorized(ctx context.Context) bool {
	return s.authz != nil && s.authz.Authorized(ctx)
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

type nopCache struct{}

func (nopCache) LatestNews(context.Context, int) ([]models.News, bool, error)   { return nil, false, nil }
func (nopCache) SetLatestNews(context.Context, int, []models.News) error        { return nil }
func (nopCache) ActivePartners(context.Context) ([]models.Partner, bool, error) { return nil, false, nil }
func (nopCache) SetActivePartners(context.Context, []models.Partner) error      { return nil }
func (nopCache) InvalidateNews(context.Context) error                           { return nil }
func (nopCache) InvalidatePartners(context.Context) error                       { return nil }

type nopRecorder struct{}

func (nopRecorder) IncRankRepair() {}
