package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/storage"
	"github.com/pribylovaa/go-site-content/pkg/log"
)

// Входные структуры сервисного слоя.

// CreateNewsInput — создание новости.
// Правила:
//   - обязательны Title, CoverImage (абсолютный http(s) URL) и хотя бы один автор;
//   - пустая Theme заменяется на models.DefaultTheme;
//   - у опубликованной новости ScheduledDate игнорируется.
type CreateNewsInput struct {
	Title            string
	CoverImage       string
	BriefDescription string
	Content          string
	Authors          []string
	Theme            models.Theme
	ScheduledDate    *time.Time
	IsPublished      bool
}

// UpdateNewsInput — частичное обновление. nil-поля не меняются.
// ClearSchedule снимает дату публикации (и таймер планировщика).
type UpdateNewsInput struct {
	Title            *string
	CoverImage       *string
	BriefDescription *string
	Content          *string
	Authors          []string
	Theme            *models.Theme
	ScheduledDate    *time.Time
	ClearSchedule    bool
	IsPublished      *bool
}

// CreateNews — бизнес-операция создания новости.
//
// Поведение:
//   - PublicationDate выставляется в текущий момент;
//   - черновик с ScheduledDate передаётся планировщику; если дата уже
//     наступила, новость публикуется до возврата и отдаётся в новом состоянии.
//
// Ошибки: ErrUnauthorized, ErrInvalidArgument, ErrConflict, ErrInternal.
func (s *Service) CreateNews(ctx context.Context, in CreateNewsInput) (*models.News, error) {
	const op = "service/news/CreateNews"

	lg := log.From(ctx).With("op", op)

	if !s.authorized(ctx) {
		lg.Warn("unauthorized")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.CoverImage = strings.TrimSpace(in.CoverImage)
	if !isHTTPURL(in.CoverImage) {
		lg.Warn("invalid argument: bad cover image url")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	authors := normalizeAuthors(in.Authors)
	if len(authors) == 0 {
		lg.Warn("invalid argument: no authors")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Theme == "" {
		in.Theme = models.DefaultTheme
	}
	if !in.Theme.Valid() {
		lg.Warn("invalid argument: unknown theme", "theme", string(in.Theme))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	now := s.clock()
	news := models.News{
		Title:            in.Title,
		CoverImage:       in.CoverImage,
		BriefDescription: strings.TrimSpace(in.BriefDescription),
		Content:          in.Content,
		Authors:          authors,
		Theme:            in.Theme,
		PublicationDate:  now,
		IsPublished:      in.IsPublished,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.ScheduledDate != nil && !in.IsPublished {
		sd := in.ScheduledDate.UTC()
		news.ScheduledDate = &sd
	}

	created, err := s.storage.CreateNews(ctx, news)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	s.invalidateNews(ctx)

	return s.syncSchedule(ctx, created), nil
}

// UpdateNews — частичное обновление новости.
//
// Поведение:
//   - IsPublished=true выставляет PublicationDate в текущий момент и снимает расписание;
//   - IsPublished=false снимает расписание, если в том же запросе нет будущей
//     ScheduledDate: снятая с публикации новость не продвигается повторно;
//   - после записи расписание синхронизируется: опубликованная новость или
//     новость без даты снимается с таймера, черновик с датой перепланируется.
//
// Ошибки: ErrUnauthorized, ErrInvalidArgument, ErrNotFound, ErrInternal.
func (s *Service) UpdateNews(ctx context.Context, id string, in UpdateNewsInput) (*models.News, error) {
	const op = "service/news/UpdateNews"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "news_id", id)

	if !s.authorized(ctx) {
		lg.Warn("unauthorized")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	now := s.clock()
	patch := models.NewsPatch{UpdatedAt: now, ClearSchedule: in.ClearSchedule}

	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			lg.Warn("invalid argument: empty title")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		patch.Title = &t
	}

	if in.CoverImage != nil {
		c := strings.TrimSpace(*in.CoverImage)
		if !isHTTPURL(c) {
			lg.Warn("invalid argument: bad cover image url")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		patch.CoverImage = &c
	}

	if in.BriefDescription != nil {
		b := strings.TrimSpace(*in.BriefDescription)
		patch.BriefDescription = &b
	}

	patch.Content = in.Content

	if in.Authors != nil {
		authors := normalizeAuthors(in.Authors)
		if len(authors) == 0 {
			lg.Warn("invalid argument: no authors")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		patch.Authors = &authors
	}

	if in.Theme != nil {
		if !in.Theme.Valid() {
			lg.Warn("invalid argument: unknown theme", "theme", string(*in.Theme))
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		patch.Theme = in.Theme
	}

	if in.ScheduledDate != nil && !in.ClearSchedule {
		sd := in.ScheduledDate.UTC()
		patch.ScheduledDate = &sd
	}

	if in.IsPublished != nil {
		patch.IsPublished = in.IsPublished
		switch {
		case *in.IsPublished:
			patch.PublicationDate = &now
			patch.ClearSchedule = true
		case patch.ScheduledDate == nil || !patch.ScheduledDate.After(now):
			// Снятие с публикации без новой будущей даты оставляет обычный черновик.
			patch.ClearSchedule = true
		}
	}

	if patch.ClearSchedule {
		patch.ScheduledDate = nil
	}

	updated, err := s.storage.UpdateNews(ctx, id, patch)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	s.invalidateNews(ctx)

	return s.syncSchedule(ctx, updated), nil
}

// DeleteNews удаляет новость и снимает её таймер.
func (s *Service) DeleteNews(ctx context.Context, id string) error {
	const op = "service/news/DeleteNews"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "news_id", id)

	if !s.authorized(ctx) {
		lg.Warn("unauthorized")
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeleteNews(ctx, id); err != nil {
		return mapStorageErr(lg, op, err)
	}

	s.sched.CancelItem(id)
	s.invalidateNews(ctx)

	return nil
}

// NewsByID возвращает новость. Черновики видны только авторизованным вызывающим,
// остальным отдаётся ErrNotFound.
func (s *Service) NewsByID(ctx context.Context, id string) (*models.News, error) {
	const op = "service/news/NewsByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "news_id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	news, err := s.storage.NewsByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	if !news.IsPublished && !s.authorized(ctx) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return news, nil
}

// ListNews возвращает новости по фильтру, сначала свежие.
// Анонимный вызывающий всегда получает только опубликованные.
func (s *Service) ListNews(ctx context.Context, filter models.NewsFilter) ([]models.News, error) {
	const op = "service/news/ListNews"

	lg := log.From(ctx).With("op", op)

	if filter.Theme != "" && !filter.Theme.Valid() {
		lg.Warn("invalid argument: unknown theme", "theme", string(filter.Theme))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		lg.Warn("invalid argument: from after to")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	filter.Search = strings.TrimSpace(filter.Search)
	if !s.authorized(ctx) {
		filter.PublishedOnly = true
	}

	items, err := s.storage.ListNews(ctx, filter)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return items, nil
}

// LatestNews возвращает до limit последних опубликованных новостей.
// limit <= 0 — значение из конфига; сверху ограничен Limits.Max.
func (s *Service) LatestNews(ctx context.Context, limit int) ([]models.News, error) {
	const op = "service/news/LatestNews"

	lg := log.From(ctx).With("op", op)
	limit = s.normalizeLimit(limit)

	if items, ok, err := s.cache.LatestNews(ctx, limit); err != nil {
		lg.Warn("cache read failed", "err", err)
	} else if ok {
		return items, nil
	}

	items, err := s.storage.LatestNews(ctx, limit)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	if err := s.cache.SetLatestNews(ctx, limit, items); err != nil {
		lg.Warn("cache write failed", "err", err)
	}

	return items, nil
}

// syncSchedule приводит таймер планировщика в соответствие с записью.
// Если цель уже наступила, планировщик публикует синхронно и запись перечитывается.
func (s *Service) syncSchedule(ctx context.Context, news *models.News) *models.News {
	const op = "service/news/syncSchedule"

	if !news.Draft() {
		s.sched.CancelItem(news.ID)
		return news
	}

	lg := log.From(ctx).With("op", op, "news_id", news.ID)

	target := *news.ScheduledDate
	if err := s.sched.ScheduleItem(ctx, news.ID, *news, target); err != nil {
		// Черновик останется в хранилище и будет подобран следующим сканированием.
		lg.Error("schedule failed", "err", err)
		return news
	}

	if target.After(s.clock()) {
		return news
	}

	fresh, err := s.storage.NewsByID(ctx, news.ID)
	if err != nil {
		lg.Warn("reload after publish failed", "err", err)
		return news
	}

	return fresh
}

func (s *Service) normalizeLimit(limit int) int {
	def, maxLimit := s.cfg.Limits.Latest, s.cfg.Limits.Max
	if def <= 0 {
		def = 3
	}

	if limit <= 0 {
		limit = def
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return limit
}

func (s *Service) invalidateNews(ctx context.Context) {
	if err := s.cache.InvalidateNews(ctx); err != nil {
		log.From(ctx).Warn("cache invalidate failed", slog.String("scope", "news"), slog.String("err", err.Error()))
	}
}

// mapStorageErr переводит ошибки хранилища в ошибки сервиса.
// Ошибки контекста передаются как есть.
func mapStorageErr(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("not found")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrConflict):
		lg.Warn("conflict")
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		lg.Warn("context done", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	default:
		lg.Error("storage error", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}

// isHTTPURL сообщает, является ли строка абсолютным http(s) URL с хостом.
func isHTTPURL(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// normalizeAuthors обрезает пробелы и отбрасывает пустые имена.
func normalizeAuthors(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}

	return out
}
