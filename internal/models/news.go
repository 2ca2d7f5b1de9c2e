// Package models содержит доменные сущности content-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища, планировщика и транспорта.
package models

import "time"

// Theme — тематическая метка новости (фиксированный набор).
type Theme string

const (
	ThemeInnovation          Theme = "Inovação"
	ThemeEvents              Theme = "Eventos"
	ThemePartnerships        Theme = "Parcerias"
	ThemeStartupEcosystem    Theme = "Startup Ecosystem"
	ThemeMobileDevelopment   Theme = "Mobile Development"
	ThemeAcademicPartnership Theme = "Academic Partnership"
	ThemeTechnology          Theme = "Tecnologia"
	ThemeDevelopment         Theme = "Desenvolvimento"
	ThemeTraining            Theme = "Capacitação"
	ThemeNetworking          Theme = "Networking"
)

// DefaultTheme подставляется, если тема не передана при создании.
const DefaultTheme = ThemeTechnology

var themes = []Theme{
	ThemeInnovation,
	ThemeEvents,
	ThemePartnerships,
	ThemeStartupEcosystem,
	ThemeMobileDevelopment,
	ThemeAcademicPartnership,
	ThemeTechnology,
	ThemeDevelopment,
	ThemeTraining,
	ThemeNetworking,
}

// Themes возвращает копию списка допустимых тем в порядке отображения.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// Valid сообщает, входит ли тема в фиксированный набор.
func (t Theme) Valid() bool {
	for _, v := range themes {
		if v == t {
			return true
		}
	}

	return false
}

// News — доменная сущность новости.
//
// Особенности:
//   - ID — hex ObjectID MongoDB, выдаётся хранилищем;
//   - временные метки — в UTC;
//   - ScheduledDate имеет смысл только у черновиков (IsPublished == false);
//     после продвижения в опубликованное состояние поле не используется,
//     а PublicationDate выставляется во время продвижения.
type News struct {
	ID               string
	Title            string
	CoverImage       string
	BriefDescription string
	Content          string
	Authors          []string
	Theme            Theme
	PublicationDate  time.Time
	ScheduledDate    *time.Time
	IsPublished      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Draft сообщает, ожидает ли новость отложенной публикации.
func (n News) Draft() bool {
	return !n.IsPublished && n.ScheduledDate != nil
}

// NewsPatch — частичное обновление новости. nil-поля не меняются.
//
// ClearSchedule снимает ScheduledDate (имеет приоритет над ScheduledDate).
// UpdatedAt выставляет сервисный слой.
type NewsPatch struct {
	Title            *string
	CoverImage       *string
	BriefDescription *string
	Content          *string
	Authors          *[]string
	Theme            *Theme
	ScheduledDate    *time.Time
	ClearSchedule    bool
	IsPublished      *bool
	PublicationDate  *time.Time
	UpdatedAt        time.Time
}

// NewsFilter — параметры выборки списка новостей.
//
// Особенности:
//   - Theme == "" — все темы;
//   - Search ищет без учёта регистра по title, authors и brief_description;
//   - From/To ограничивают publication_date (включительно);
//   - PublishedOnly скрывает черновики.
type NewsFilter struct {
	Search        string
	Theme         Theme
	From          *time.Time
	To            *time.Time
	PublishedOnly bool
}
