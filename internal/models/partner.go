package models

import "time"

// Partner — партнёр организации, выводимый в упорядоченной ленте логотипов.
//
// Order — ранг отображения. Ожидается плотная уникальная последовательность 1..n,
// но временные дубли допустимы: их чинит сервисный слой при следующем чтении.
type Partner struct {
	ID         string
	Name       string
	LogoURL    string
	WebsiteURL string
	Order      int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PartnerPatch — частичное обновление партнёра. nil-поля не меняются.
type PartnerPatch struct {
	Name       *string
	LogoURL    *string
	WebsiteURL *string
	Order      *int
	IsActive   *bool
	UpdatedAt  time.Time
}

// PartnerFilter — фильтр админского списка партнёров.
type PartnerFilter struct {
	Search   string
	IsActive *bool
}

// RankMove — одно присваивание ранга в запросе переупорядочивания.
type RankMove struct {
	ID    string
	Order int
}
