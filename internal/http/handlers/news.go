package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-site-content/internal/errors"
	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/service"
)

const dateLayout = "2006-01-02"

// ListNews — GET /news?search=&theme=&from=&to=
// from/to принимают RFC 3339 или дату YYYY-MM-DD (to — до конца дня).
func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.NewsFilter{
		Search: q.Get("search"),
		Theme:  models.Theme(q.Get("theme")),
	}

	var err error
	if filter.From, err = parseTimeParam(q.Get("from"), false); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument(err))
		return
	}
	if filter.To, err = parseTimeParam(q.Get("to"), true); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument(err))
		return
	}

	items, err := h.svc.ListNews(r.Context(), filter)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newsListFromModels(items))
}

// LatestNews — GET /news/latest?limit=
func (h *Handlers) LatestNews(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument(err))
			return
		}
		limit = n
	}

	items, err := h.svc.LatestNews(r.Context(), limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newsListFromModels(items))
}

func (h *Handlers) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.NewsByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newsFromModel(*item))
}

func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
	var in createNewsRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	item, err := h.svc.CreateNews(r.Context(), service.CreateNewsInput{
		Title:            in.Title,
		CoverImage:       in.CoverImage,
		BriefDescription: in.BriefDescription,
		Content:          in.Content,
		Authors:          in.Authors,
		Theme:            models.Theme(in.Theme),
		ScheduledDate:    in.ScheduledDate,
		IsPublished:      in.IsPublished,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newsFromModel(*item))
}

func (h *Handlers) UpdateNews(w http.ResponseWriter, r *http.Request) {
	var in updateNewsRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	upd := service.UpdateNewsInput{
		Title:            in.Title,
		CoverImage:       in.CoverImage,
		BriefDescription: in.BriefDescription,
		Content:          in.Content,
		Authors:          in.Authors,
		ScheduledDate:    in.ScheduledDate,
		ClearSchedule:    in.ClearSchedule,
		IsPublished:      in.IsPublished,
	}
	if in.Theme != nil {
		th := models.Theme(*in.Theme)
		upd.Theme = &th
	}

	item, err := h.svc.UpdateNews(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newsFromModel(*item))
}

func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteNews(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Themes — GET /themes: фиксированный набор тем в порядке отображения.
func (h *Handlers) Themes(w http.ResponseWriter, r *http.Request) {
	themes := models.Themes()

	out := themesJSON{Items: make([]string, 0, len(themes)), Default: string(models.DefaultTheme)}
	for _, t := range themes {
		out.Items = append(out.Items, string(t))
	}

	writeJSON(w, http.StatusOK, out)
}

func parseTimeParam(v string, endOfDay bool) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, v); err == nil {
		t = t.UTC()
		return &t, nil
	}

	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, errors.New("bad date: " + v)
	}
	if endOfDay {
		d = d.Add(24*time.Hour - time.Millisecond)
	}

	return &d, nil
}
