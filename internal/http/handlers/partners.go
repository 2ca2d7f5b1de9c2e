package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-site-content/internal/errors"
	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/service"
)

// ListPartners — GET /partners?search=&active=
func (h *Handlers) ListPartners(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.PartnerFilter{Search: q.Get("search")}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument(err))
			return
		}
		filter.IsActive = &active
	}

	items, err := h.svc.SearchPartners(r.Context(), filter)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, partnerListFromModels(items))
}

func (h *Handlers) ActivePartners(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ActivePartners(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, partnerListFromModels(items))
}

func (h *Handlers) NextOrder(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.NextOrder(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nextOrderJSON{Order: n})
}

func (h *Handlers) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var in createPartnerRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	item, err := h.svc.CreatePartner(r.Context(), service.CreatePartnerInput{
		Name:       in.Name,
		LogoURL:    in.LogoURL,
		WebsiteURL: in.WebsiteURL,
		Order:      in.Order,
		IsActive:   in.IsActive,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, partnerFromModel(*item))
}

func (h *Handlers) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	var in updatePartnerRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	item, err := h.svc.UpdatePartner(r.Context(), chi.URLParam(r, "id"), service.UpdatePartnerInput{
		Name:       in.Name,
		LogoURL:    in.LogoURL,
		WebsiteURL: in.WebsiteURL,
		Order:      in.Order,
		IsActive:   in.IsActive,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, partnerFromModel(*item))
}

func (h *Handlers) DeletePartner(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePartner(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reorder — POST /partners/reorder {"items":[{"id","order"}]}.
// Назначения применяются по очереди; первая ошибка прерывает запрос.
func (h *Handlers) Reorder(w http.ResponseWriter, r *http.Request) {
	var in reorderRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	moves := make([]models.RankMove, 0, len(in.Items))
	for _, it := range in.Items {
		moves = append(moves, models.RankMove{ID: it.ID, Order: it.Order})
	}

	if err := h.svc.Reorder(r.Context(), moves); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MovePartner — POST /partners/{id}/move {"direction":"up"|"down"}.
func (h *Handlers) MovePartner(w http.ResponseWriter, r *http.Request) {
	var in moveRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.svc.MovePartner(r.Context(), chi.URLParam(r, "id"), in.Direction)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, partnerListFromModels(items))
}
