package handlers

import (
	"time"

	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/scheduler"
)

// Входные/выходные модели REST. Время — RFC 3339 в UTC.

type newsJSON struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	CoverImage       string     `json:"cover_image"`
	BriefDescription string     `json:"brief_description"`
	Content          string     `json:"content"`
	Authors          []string   `json:"authors"`
	Theme            string     `json:"theme"`
	PublicationDate  time.Time  `json:"publication_date"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
	IsPublished      bool       `json:"is_published"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type newsListJSON struct {
	Items []newsJSON `json:"items"`
}

type createNewsRequest struct {
	Title            string     `json:"title"`
	CoverImage       string     `json:"cover_image"`
	BriefDescription string     `json:"brief_description"`
	Content          string     `json:"content"`
	Authors          []string   `json:"authors"`
	Theme            string     `json:"theme"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
	IsPublished      bool       `json:"is_published"`
}

// updateNewsRequest — PATCH: отсутствующие поля не меняются.
// clear_schedule=true снимает публикацию с расписания.
type updateNewsRequest struct {
	Title            *string    `json:"title"`
	CoverImage       *string    `json:"cover_image"`
	BriefDescription *string    `json:"brief_description"`
	Content          *string    `json:"content"`
	Authors          []string   `json:"authors"`
	Theme            *string    `json:"theme"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
	ClearSchedule    bool       `json:"clear_schedule"`
	IsPublished      *bool      `json:"is_published"`
}

type partnerJSON struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logo_url"`
	WebsiteURL string    `json:"website_url"`
	Order      int       `json:"order"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type partnerListJSON struct {
	Items []partnerJSON `json:"items"`
}

type createPartnerRequest struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
	Order      int    `json:"order"`
	IsActive   bool   `json:"is_active"`
}

type updatePartnerRequest struct {
	Name       *string `json:"name"`
	LogoURL    *string `json:"logo_url"`
	WebsiteURL *string `json:"website_url"`
	Order      *int    `json:"order"`
	IsActive   *bool   `json:"is_active"`
}

type rankMoveJSON struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type reorderRequest struct {
	Items []rankMoveJSON `json:"items"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type nextOrderJSON struct {
	Order int `json:"order"`
}

type themesJSON struct {
	Items   []string `json:"items"`
	Default string   `json:"default"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenJSON struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type pendingJSON struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Target  time.Time `json:"target"`
	DueInMS int64     `json:"due_in_ms"`
}

type schedulerJSON struct {
	scheduler.Status
	Pending []pendingJSON `json:"pending"`
}

type clearedJSON struct {
	Cleared int `json:"cleared"`
}

func newsFromModel(n models.News) newsJSON {
	authors := n.Authors
	if authors == nil {
		authors = []string{}
	}

	return newsJSON{
		ID:               n.ID,
		Title:            n.Title,
		CoverImage:       n.CoverImage,
		BriefDescription: n.BriefDescription,
		Content:          n.Content,
		Authors:          authors,
		Theme:            string(n.Theme),
		PublicationDate:  n.PublicationDate.UTC(),
		ScheduledDate:    n.ScheduledDate,
		IsPublished:      n.IsPublished,
		CreatedAt:        n.CreatedAt.UTC(),
		UpdatedAt:        n.UpdatedAt.UTC(),
	}
}

func newsListFromModels(items []models.News) newsListJSON {
	out := newsListJSON{Items: make([]newsJSON, 0, len(items))}
	for _, n := range items {
		out.Items = append(out.Items, newsFromModel(n))
	}
	return out
}

func partnerFromModel(p models.Partner) partnerJSON {
	return partnerJSON{
		ID:         p.ID,
		Name:       p.Name,
		LogoURL:    p.LogoURL,
		WebsiteURL: p.WebsiteURL,
		Order:      p.Order,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}
}

func partnerListFromModels(items []models.Partner) partnerListJSON {
	out := partnerListJSON{Items: make([]partnerJSON, 0, len(items))}
	for _, p := range items {
		out.Items = append(out.Items, partnerFromModel(p))
	}
	return out
}
