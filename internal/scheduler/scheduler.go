// Package scheduler реализует отложенную публикацию черновиков новостей.
//
// Планировщик держит в памяти по одному таймеру на новость и периодически
// сверяет эту картину с хранилищем (reconciliation scan). Корректность при
// гонке таймера и сканирования обеспечивается идемпотентной записью
// Store.PublishNews, а не блокировками вокруг I/O.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/pkg/log"
)

const (
	// DefaultInterval — период сканирования, если Options.Interval не задан.
	DefaultInterval = 10 * time.Second
	// DefaultPublishTimeout — дедлайн записи, выполняемой по срабатыванию таймера.
	DefaultPublishTimeout = 5 * time.Second
)

// Источники публикации (метка метрики published).
const (
	SourceTimer     = "timer"
	SourceScan      = "scan"
	SourceImmediate = "immediate"
)

// ErrEmptyID возвращается ScheduleItem для пустого идентификатора.
var ErrEmptyID = errors.New("scheduler: empty news id")

// Store — то, что планировщику нужно от хранилища.
type Store interface {
	// ScheduledDrafts — черновики с непустой датой публикации, по возрастанию даты.
	ScheduledDrafts(ctx context.Context) ([]models.News, error)
	// PublishNews переводит черновик в опубликованное состояние.
	// changed == false, если новость уже опубликована или снята с расписания.
	PublishNews(ctx context.Context, id string, at time.Time) (changed bool, err error)
}

// Recorder — приёмник метрик планировщика.
type Recorder interface {
	SetPending(n int)
	IncPublished(source string)
	IncPublishFailure()
	IncScanFailure()
	ObserveScan(d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) SetPending(int)            {}
func (nopRecorder) IncPublished(string)       {}
func (nopRecorder) IncPublishFailure()        {}
func (nopRecorder) IncScanFailure()           {}
func (nopRecorder) ObserveScan(time.Duration) {}

// Options — параметры планировщика. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	Interval       time.Duration
	PublishTimeout time.Duration
	Logger         *slog.Logger
	Recorder       Recorder
	// OnPublish вызывается после успешного продвижения черновика.
	OnPublish func(ctx context.Context, id string)
}

// Status — снимок состояния для панели администратора.
type Status struct {
	Running      bool `json:"running"`
	PendingCount int  `json:"pending_count"`
}

// PendingItem — одна ожидающая публикация.
type PendingItem struct {
	ID     string
	Title  string
	Target time.Time
}

type entry struct {
	timer  *time.Timer
	title  string
	target time.Time
}

// Scheduler — планировщик отложенных публикаций.
// Экземпляр создаётся явно через New; глобального состояния нет.
type Scheduler struct {
	store          Store
	interval       time.Duration
	publishTimeout time.Duration
	log            *slog.Logger
	rec            Recorder
	onPublish      func(ctx context.Context, id string)
	now            func() time.Time

	mu      sync.Mutex
	timers  map[string]*entry
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	// gen увеличивается на каждом Stop; сканирование, начатое до Stop,
	// не может регистрировать таймеры после него.
	gen uint64
}

// New создаёт остановленный планировщик.
func New(store Store, opts Options) *Scheduler {
	s := &Scheduler{
		store:          store,
		interval:       opts.Interval,
		publishTimeout: opts.PublishTimeout,
		log:            opts.Logger,
		rec:            opts.Recorder,
		onPublish:      opts.OnPublish,
		now:            time.Now,
		timers:         make(map[string]*entry),
	}

	if s.interval <= 0 {
		s.interval = DefaultInterval
	}
	if s.publishTimeout <= 0 {
		s.publishTimeout = DefaultPublishTimeout
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.rec == nil {
		s.rec = nopRecorder{}
	}

	return s
}

// ScheduleItem ставит публикацию новости id на момент target.
//
// Особенности:
//   - если target уже наступил, публикация выполняется синхронно и её ошибка
//     возвращается вызывающему;
//   - иначе прежний таймер для id (если был) отменяется и заменяется новым;
//   - snapshot используется только для диагностики (заголовок в Pending).
func (s *Scheduler) ScheduleItem(ctx context.Context, id string, snapshot models.News, target time.Time) error {
	const op = "scheduler/ScheduleItem"

	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyID)
	}

	delay := target.Sub(s.now())
	if delay <= 0 {
		s.CancelItem(id)

		if _, err := s.publish(ctx, id, SourceImmediate); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	}

	s.mu.Lock()
	s.stopLocked(id)
	s.addLocked(id, snapshot.Title, target, delay)
	n := len(s.timers)
	s.mu.Unlock()

	s.rec.SetPending(n)
	log.From(ctx).Debug("item_scheduled",
		slog.String("op", op),
		slog.String("id", id),
		slog.Time("target", target.UTC()),
		slog.Duration("delay", delay),
	)

	return nil
}

// CancelItem снимает таймер новости id. Отсутствие таймера — не ошибка.
func (s *Scheduler) CancelItem(id string) {
	s.mu.Lock()
	removed := s.stopLocked(strings.TrimSpace(id))
	n := len(s.timers)
	s.mu.Unlock()

	if removed {
		s.rec.SetPending(n)
		s.log.Debug("item_cancelled",
			slog.String("op", "scheduler/CancelItem"),
			slog.String("id", id),
		)
	}
}

// Start запускает периодическое сканирование: первый проход сразу, далее раз в интервал.
// Повторный вызов при работающем цикле ничего не делает.
// Цикл завершается по Stop или по отмене ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.running = true
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go s.loop(loopCtx, done)
}

// Stop останавливает цикл, дожидается его завершения и снимает все таймеры.
// Безопасен при повторном вызове. Не должен вызываться из OnPublish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.running = false
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	s.mu.Lock()
	s.gen++
	cleared := s.clearLocked()
	s.mu.Unlock()

	s.rec.SetPending(0)

	if cancel != nil || cleared > 0 {
		s.log.Info("scheduler_stopped",
			slog.String("op", "scheduler/Stop"),
			slog.Int("cleared", cleared),
		)
	}
}

// ForceCheck выполняет один проход сканирования синхронно.
// Ошибка чтения из хранилища возвращается вызывающему.
func (s *Scheduler) ForceCheck(ctx context.Context) error {
	return s.scan(ctx)
}

// Status возвращает снимок состояния без обращения к хранилищу.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{Running: s.running, PendingCount: len(s.timers)}
}

// Pending возвращает ожидающие публикации, отсортированные по времени.
func (s *Scheduler) Pending() []PendingItem {
	s.mu.Lock()
	out := make([]PendingItem, 0, len(s.timers))
	for id, e := range s.timers {
		out = append(out, PendingItem{ID: id, Title: e.title, Target: e.target})
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Target.Equal(out[j].Target) {
			return out[i].Target.Before(out[j].Target)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// ClearAll снимает все таймеры, не останавливая цикл сканирования.
// Следующий проход заново зарегистрирует будущие публикации.
func (s *Scheduler) ClearAll() int {
	s.mu.Lock()
	n := s.clearLocked()
	s.mu.Unlock()

	s.rec.SetPending(0)
	s.log.Info("timers_cleared",
		slog.String("op", "scheduler/ClearAll"),
		slog.Int("cleared", n),
	)

	return n
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	const op = "scheduler/loop"

	defer close(done)
	defer func() {
		s.mu.Lock()
		if s.done == done {
			s.running = false
			s.cancel = nil
			s.done = nil
		}
		s.mu.Unlock()
	}()

	ctx = log.Into(ctx, s.log)

	s.log.Info("scheduler_start",
		slog.String("op", op),
		slog.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	_ = s.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler_stop", slog.String("op", op))
			return
		case <-ticker.C:
			_ = s.scan(ctx)
		}
	}
}

// scan — один проход сверки с хранилищем.
// Ошибки отдельных публикаций не прерывают проход.
func (s *Scheduler) scan(ctx context.Context) error {
	const op = "scheduler/scan"

	started := s.now()

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	items, err := s.store.ScheduledDrafts(ctx)
	if err != nil {
		s.rec.IncScanFailure()
		s.log.Warn("scan_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: scheduled_drafts: %w", op, err)
	}

	var published, registered, failed int

	for _, n := range items {
		if ctx.Err() != nil {
			break
		}

		if n.ID == "" || n.ScheduledDate == nil {
			continue
		}

		target := *n.ScheduledDate
		if !target.After(s.now()) {
			changed, err := s.publish(ctx, n.ID, SourceScan)
			switch {
			case err != nil:
				failed++
			case changed:
				published++
			}

			continue
		}

		if s.registerIfAbsent(gen, n.ID, n.Title, target) {
			registered++
		}
	}

	s.rec.ObserveScan(s.now().Sub(started))

	lvl := slog.LevelDebug
	if published > 0 || registered > 0 || failed > 0 {
		lvl = slog.LevelInfo
	}
	s.log.Log(ctx, lvl, "scan_done",
		slog.String("op", op),
		slog.Int("found", len(items)),
		slog.Int("published", published),
		slog.Int("registered", registered),
		slog.Int("failed", failed),
	)

	return nil
}

// publish — идемпотентное продвижение черновика.
func (s *Scheduler) publish(ctx context.Context, id, source string) (bool, error) {
	const op = "scheduler/publish"

	at := s.now().UTC()

	changed, err := s.store.PublishNews(ctx, id, at)
	if err != nil {
		s.rec.IncPublishFailure()
		s.log.Warn("publish_failed",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("source", source),
			slog.String("err", err.Error()),
		)

		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !changed {
		s.log.Debug("publish_skipped",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("source", source),
		)

		return false, nil
	}

	s.rec.IncPublished(source)
	s.log.Info("news_published",
		slog.String("op", op),
		slog.String("id", id),
		slog.String("source", source),
		slog.Time("at", at),
	)

	if s.onPublish != nil {
		s.onPublish(ctx, id)
	}

	return true, nil
}

// fire — обработчик срабатывания таймера e.
// Таймер, заменённый или снятый до срабатывания, ничего не делает.
func (s *Scheduler) fire(id string, e *entry) {
	s.mu.Lock()
	if cur, ok := s.timers[id]; !ok || cur != e {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	n := len(s.timers)
	s.mu.Unlock()

	s.rec.SetPending(n)

	ctx, cancel := context.WithTimeout(log.Into(context.Background(), s.log), s.publishTimeout)
	defer cancel()

	_, _ = s.publish(ctx, id, SourceTimer)
}

func (s *Scheduler) registerIfAbsent(gen uint64, id, title string, target time.Time) bool {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return false
	}
	if _, ok := s.timers[id]; ok {
		s.mu.Unlock()
		return false
	}
	s.addLocked(id, title, target, target.Sub(s.now()))
	n := len(s.timers)
	s.mu.Unlock()

	s.rec.SetPending(n)

	return true
}

// addLocked регистрирует таймер. Вызывается под s.mu.
func (s *Scheduler) addLocked(id, title string, target time.Time, delay time.Duration) {
	e := &entry{title: title, target: target.UTC()}
	e.timer = time.AfterFunc(delay, func() { s.fire(id, e) })
	s.timers[id] = e
}

// stopLocked снимает таймер id. Вызывается под s.mu.
func (s *Scheduler) stopLocked(id string) bool {
	e, ok := s.timers[id]
	if !ok {
		return false
	}

	e.timer.Stop()
	delete(s.timers, id)

	return true
}

// clearLocked снимает все таймеры. Вызывается под s.mu.
func (s *Scheduler) clearLocked() int {
	n := len(s.timers)
	for id, e := range s.timers {
		e.timer.Stop()
		delete(s.timers, id)
	}

	return n
}
