package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/pkg/log"
)

// Направления перемещения партнёра в ленте.
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// CreatePartnerInput — создание партнёра. Order <= 0 — следующий свободный ранг.
type CreatePartnerInput struct {
	Name       string
	LogoURL    string
	WebsiteURL string
	Order      int
	IsActive   bool
}

// UpdatePartnerInput — частичное обновление. nil-поля не меняются.
type UpdatePartnerInput struct {
	Name       *string
	LogoURL    *string
	WebsiteURL *string
	Order      *int
	IsActive   *bool
}

// ListPartners возвращает всех партнёров по возрастанию ранга.
//
// Если ранги содержат дубли, список детерминированно пересчитывается
// в 1..n (стабильно, при равенстве — порядок хранилища), изменённые ранги
// записываются, и возвращается уже исправленный список.
// Ошибки хранилища возвращаются вызывающему: устаревших данных нет.
func (s *Service) ListPartners(ctx context.Context) ([]models.Partner, error) {
	const op = "service/partners/ListPartners"

	lg := log.From(ctx).With("op", op)

	items, err := s.storage.ListPartners(ctx)
	if err != nil {
		lg.Error("storage error on ListPartners", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	fixed, moves := resequence(items)
	if len(moves) == 0 {
		return items, nil
	}

	lg.Warn("rank conflict, resequencing", "partners", len(items), "changed", len(moves))

	now := s.clock()
	for _, mv := range moves {
		if err := s.storage.SetPartnerOrder(ctx, mv.ID, mv.Order, now); err != nil {
			lg.Error("storage error on SetPartnerOrder", "partner_id", mv.ID, "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	for i := range fixed {
		for _, mv := range moves {
			if fixed[i].ID == mv.ID {
				fixed[i].UpdatedAt = now
			}
		}
	}

	s.rec.IncRankRepair()
	s.invalidatePartners(ctx)

	return fixed, nil
}

// resequence возвращает список с рангами 1..n и только изменившиеся назначения.
// Без конфликта (все ранги различны) список возвращается как есть.
func resequence(items []models.Partner) ([]models.Partner, []models.RankMove) {
	if !hasRankConflict(items) {
		return items, nil
	}

	out := append([]models.Partner(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	var moves []models.RankMove
	for i := range out {
		rank := i + 1
		if out[i].Order != rank {
			out[i].Order = rank
			moves = append(moves, models.RankMove{ID: out[i].ID, Order: rank})
		}
	}

	return out, moves
}

func hasRankConflict(items []models.Partner) bool {
	seen := make(map[int]struct{}, len(items))
	for _, p := range items {
		seen[p.Order] = struct{}{}
	}

	return len(seen) != len(items)
}

// Reorder записывает назначения рангов по очереди.
//
// Атомарности нет: сбой между записями может оставить дубль ранга,
// который исправит следующий ListPartners.
func (s *Service) Reorder(ctx context.Context, moves []models.RankMove) error {
	const op = "service/partners/Reorder"

	lg := log.From(ctx).With("op", op)

	if !s.authorized(ctx) {
		lg.Warn("unauthorized")
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if len(moves) == 0 {
		lg.Warn("invalid argument: no moves")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	for i := range moves {
		moves[i].ID = strings.TrimSpace(moves[i].ID)
		if moves[i].ID == "" || moves[i].Order <= 0 {
			lg.Warn("invalid argument: bad move", "index", i)
			return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	defer s.invalidatePartners(ctx)

	now := s.clock()
	for _, mv := range moves {
		if err := s.storage.SetPartnerOrder(ctx, mv.ID, mv.Order, now); err != nil {
			return mapStorageErr(lg.With("partner_id", mv.ID), op, err)
		}
	}

	return nil
}

// MovePartner меняет партнёра местами с соседом сверху или снизу.
// На краю списка ничего не меняется. Возвращает обновлённый список.
func (s *Service) MovePartner(ctx context.Context, id, direction string) ([]models.Partner, error) {
	const op = "service/partners/MovePartner"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "partner_id", id)

	if !s.authorized(ctx) {
		lg.Warn("unauthorized")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if id == "" || (direction != MoveUp && direction != MoveDown) {
		lg.Warn("invalid argument", "direction", direction)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	list, err := s.ListPartners(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		lg.Warn("not found")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	j := idx + 1
	if direction == MoveUp {
		j = idx - 1
	}
	if j < 0 || j >= len(list) {
		return list, nil
	}

	a, b := list[idx], list[j]
	if err := s.Reorder(ctx, []models.RankMove{
		{ID: a.ID, Order: b.Order},
		{ID: b.ID, Order: a.Order},
	}); err != nil {
		return nil, err
	}

	return s.ListPartners(ctx)
}

// NextOrder возвращает max(ранг)+1 или 1 для пустого списка.
// Читает хранилище напрямую, минуя кэш.
func (s *Service) NextOrder(ctx context.Context) (int, error) {
	const op = "service/partners/NextOrder"

	maxOrder, err := s.storage.MaxPartnerOrder(ctx)
	if err != nil {
		return 0, mapStorageErr(log.From(ctx).With("op", op), op, err)
	}

	return maxOrder + 1, nil
}

// CreatePartner — бизнес-операция создания партнёра.
//
// Валидация:
//   - Name обязателен (после TrimSpace);
//   - LogoURL — обязательный абсолютный http(s) URL;
//   - WebsiteURL — пустой или абсолютный http(s) URL.
func (s *Service) CreatePartner(ctx context.Context, in CreatePartnerInput) (*models.Partner, error) {
	const op = "service/partners/CreatePartner"

	lg := log.From(ctx).With("op", op)

	if !s.authorized(ctx) {
		lg.Warn("unauthorized")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	in.Name = strings.TrimSpace(in.Name)
	in.LogoURL = strings.TrimSpace(in.LogoURL)
	in.WebsiteURL = strings.TrimSpace(in.WebsiteURL)

	if in.Name == "" {
		lg.Warn("invalid argument: empty name")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if !isHTTPURL(in.LogoURL) {
		lg.Warn("invalid argument: bad logo url")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if in.WebsiteURL != "" && !isHTTPURL(in.WebsiteURL) {
		lg.Warn("invalid argument: bad website url")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Order <= 0 {
		next, err := s.NextOrder(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		in.Order = next
	}

	now := s.clock()
	created, err := s.storage.CreatePartner(ctx, models.Partner{
		Name:       in.Name,
		LogoURL:    in.LogoURL,
		WebsiteURL: in.WebsiteURL,
		Order:      in.Order,
		IsActive:   in.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	s.invalidatePartners(ctx)

	return created, nil
}

// UpdatePartner — частичное обновление партнёра с той же валидацией, что и при создании.
func (s *Service) UpdatePartner(ctx context.Context, id string, in UpdatePartnerInput) (*models.Partner, error) {
	const op = "service/partners/UpdatePartner"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "partner_id", id)

	if !s.authorized(ctx) {
		lg.Warn("unauthorized")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	patch := models.PartnerPatch{UpdatedAt: s.clock(), IsActive: in.IsActive}

	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			lg.Warn("invalid argument: empty name")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		patch.Name = &n
	}

	if in.LogoURL != nil {
		l := strings.TrimSpace(*in.LogoURL)
		if !isHTTPURL(l) {
			lg.Warn("invalid argument: bad logo url")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		patch.LogoURL = &l
	}

	if in.WebsiteURL != nil {
		w := strings.TrimSpace(*in.WebsiteURL)
		if w != "" && !isHTTPURL(w) {
			lg.Warn("invalid argument: bad website url")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		patch.WebsiteURL = &w
	}

	if in.Order != nil {
		if *in.Order <= 0 {
			lg.Warn("invalid argument: non-positive order")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		patch.Order = in.Order
	}

	updated, err := s.storage.UpdatePartner(ctx, id, patch)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	s.invalidatePartners(ctx)

	return updated, nil
}

// DeletePartner удаляет партнёра. Образовавшийся пропуск в рангах не чинится.
func (s *Service) DeletePartner(ctx context.Context, id string) error {
	const op = "service/partners/DeletePartner"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "partner_id", id)

	if !s.authorized(ctx) {
		lg.Warn("unauthorized")
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeletePartner(ctx, id); err != nil {
		return mapStorageErr(lg, op, err)
	}

	s.invalidatePartners(ctx)

	return nil
}

// ActivePartners — лента логотипов публичного сайта.
func (s *Service) ActivePartners(ctx context.Context) ([]models.Partner, error) {
	const op = "service/partners/ActivePartners"

	lg := log.From(ctx).With("op", op)

	if items, ok, err := s.cache.ActivePartners(ctx); err != nil {
		lg.Warn("cache read failed", "err", err)
	} else if ok {
		return items, nil
	}

	all, err := s.ListPartners(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]models.Partner, 0, len(all))
	for _, p := range all {
		if p.IsActive {
			active = append(active, p)
		}
	}

	if err := s.cache.SetActivePartners(ctx, active); err != nil {
		lg.Warn("cache write failed", "err", err)
	}

	return active, nil
}

// SearchPartners фильтрует список по подстроке имени (без учёта регистра)
// и признаку активности. Анонимный вызывающий видит только активных.
func (s *Service) SearchPartners(ctx context.Context, filter models.PartnerFilter) ([]models.Partner, error) {
	all, err := s.ListPartners(ctx)
	if err != nil {
		return nil, err
	}

	if !s.authorized(ctx) {
		active := true
		filter.IsActive = &active
	}

	q := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]models.Partner, 0, len(all))
	for _, p := range all {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (s *Service) invalidatePartners(ctx context.Context) {
	if err := s.cache.InvalidatePartners(ctx); err != nil {
		log.From(ctx).Warn("cache invalidate failed", "scope", "partners", "err", err)
	}
}
