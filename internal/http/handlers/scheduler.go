package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-site-content/internal/errors"
)

// SchedulerStatus — GET /admin/scheduler: состояние цикла и ожидающие публикации.
func (h *Handlers) SchedulerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.schedulerSnapshot())
}

// SchedulerCheck — POST /admin/scheduler/check: внеочередной проход сканирования.
func (h *Handlers) SchedulerCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.sched.ForceCheck(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.schedulerSnapshot())
}

// SchedulerStart — POST /admin/scheduler/start: запускает цикл сканирования на контексте процесса.
func (h *Handlers) SchedulerStart(w http.ResponseWriter, r *http.Request) {
	h.sched.Start(h.runCtx)
	writeJSON(w, http.StatusOK, h.schedulerSnapshot())
}

// SchedulerStop — POST /admin/scheduler/stop: останавливает цикл и снимает все таймеры.
func (h *Handlers) SchedulerStop(w http.ResponseWriter, r *http.Request) {
	h.sched.Stop()
	writeJSON(w, http.StatusOK, h.schedulerSnapshot())
}

// SchedulerClear — DELETE /admin/scheduler/pending: снимает таймеры, цикл продолжает работу.
func (h *Handlers) SchedulerClear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, clearedJSON{Cleared: h.sched.ClearAll()})
}

func (h *Handlers) schedulerSnapshot() schedulerJSON {
	now := h.now()
	pending := h.sched.Pending()

	out := schedulerJSON{Status: h.sched.Status(), Pending: make([]pendingJSON, 0, len(pending))}
	for _, p := range pending {
		due := p.Target.Sub(now).Milliseconds()
		if due < 0 {
			due = 0
		}
		out.Pending = append(out.Pending, pendingJSON{
			ID:      p.ID,
			Title:   p.Title,
			Target:  p.Target.UTC(),
			DueInMS: due,
		})
	}

	return out
}
