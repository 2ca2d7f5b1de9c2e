package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-site-content/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище (включая битый идентификатор).
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
)

// NewsStorage описывает операции над новостями.
type NewsStorage interface {
	// CreateNews сохраняет новость и возвращает её с выданным ID.
	// Вычисляемые хранилищем поля: ID.
	CreateNews(ctx context.Context, news models.News) (*models.News, error)

	// UpdateNews применяет частичное обновление и возвращает актуальный документ.
	// Если запись не найдена — ErrNotFound.
	UpdateNews(ctx context.Context, id string, patch models.NewsPatch) (*models.News, error)

	// DeleteNews удаляет новость. Если запись не найдена — ErrNotFound.
	DeleteNews(ctx context.Context, id string) error

	// NewsByID возвращает новость по идентификатору.
	// Если запись не найдена — ErrNotFound.
	NewsByID(ctx context.Context, id string) (*models.News, error)

	// ListNews возвращает новости по фильтру.
	// Сортировка: publication_date DESC.
	ListNews(ctx context.Context, filter models.NewsFilter) ([]models.News, error)

	// LatestNews возвращает до limit опубликованных новостей, сначала свежие.
	LatestNews(ctx context.Context, limit int) ([]models.News, error)

	// ScheduledDrafts возвращает черновики с непустым scheduled_date.
	// Сортировка: scheduled_date ASC, затем порядок вставки.
	ScheduledDrafts(ctx context.Context) ([]models.News, error)

	// PublishNews условно продвигает черновик в опубликованные:
	// совпадают только is_published=false с непустым scheduled_date.
	// Выставляет is_published=true, publication_date=at, updated_at=at
	// и обнуляет scheduled_date.
	// Возвращает true, если документ действительно изменился.
	PublishNews(ctx context.Context, id string, at time.Time) (bool, error)
}

// PartnerStorage описывает операции над партнёрами.
type PartnerStorage interface {
	// CreatePartner сохраняет партнёра и возвращает его с выданным ID.
	CreatePartner(ctx context.Context, partner models.Partner) (*models.Partner, error)

	// UpdatePartner применяет частичное обновление и возвращает актуальный документ.
	// Если запись не найдена — ErrNotFound.
	UpdatePartner(ctx context.Context, id string, patch models.PartnerPatch) (*models.Partner, error)

	// DeletePartner удаляет партнёра. Если запись не найдена — ErrNotFound.
	DeletePartner(ctx context.Context, id string) error

	// PartnerByID возвращает партнёра по идентификатору.
	// Если запись не найдена — ErrNotFound.
	PartnerByID(ctx context.Context, id string) (*models.Partner, error)

	// ListPartners возвращает всех партнёров.
	// Сортировка: order ASC, при равенстве — порядок вставки.
	ListPartners(ctx context.Context) ([]models.Partner, error)

	// SetPartnerOrder записывает один ранг. Если запись не найдена — ErrNotFound.
	SetPartnerOrder(ctx context.Context, id string, order int, at time.Time) error

	// MaxPartnerOrder возвращает максимальный ранг или 0, если партнёров нет.
	MaxPartnerOrder(ctx context.Context) (int, error)
}

// Storage — полный контракт хранилища content-сервиса.
type Storage interface {
	NewsStorage
	PartnerStorage
}
