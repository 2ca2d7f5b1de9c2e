package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-site-content/internal/config"
	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/storage"
	"github.com/stretchr/testify/require"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain поднимает MongoDB в контейнере один раз на пакет, если задан GO_TEST_INTEGRATION.
// Без него выполняются только unit-тесты, интеграционные пропускаются (см. newTestConfig).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	_ = os.Setenv("DATABASE_URL", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// newTestConfig создаёт конфиг с отдельной тестовой БД.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("set GO_TEST_INTEGRATION=1 to run MongoDB integration tests")
	}

	baseURL := os.Getenv("DATABASE_URL")
	if baseURL == "" {
		baseURL = "mongodb://localhost:27017"
	}

	dbName := "content_test_" + uuid.New().String()
	if baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}

	return &config.Config{DB: config.DBConfig{URL: baseURL + dbName}}
}

// mustNewMongo подключается к тестовой БД и регистрирует очистку.
func mustNewMongo(t *testing.T) *Mongo {
	t.Helper()

	cfg := newTestConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	require.NoError(t, err, "DATABASE_URL=%s", cfg.DB.URL)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

func ptr[T any](v T) *T { return &v }

func draft(title string, scheduled *time.Time) models.News {
	now := time.Now().UTC()
	return models.News{
		Title:           title,
		CoverImage:      "https://img.example.org/" + title + ".png",
		Content:         "body",
		Authors:         []string{"Equipe"},
		Theme:           models.ThemeEvents,
		PublicationDate: now,
		ScheduledDate:   scheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ---- unit ----

func TestDatabaseFromURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017/site", "site"},
		{"mongodb://u:p@h1,h2/site?replicaSet=rs0", "site"},
		{"mongodb://localhost:27017", defaultDBName},
		{"mongodb://localhost:27017/", defaultDBName},
		{"::bad::", defaultDBName},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, databaseFromURI(tt.uri), tt.uri)
	}
}

func TestObjectID_InvalidIsNotFound(t *testing.T) {
	_, err := objectID("nope")
	require.ErrorIs(t, err, storage.ErrNotFound)

	oid := primitive.NewObjectID()
	got, err := objectID("  " + oid.Hex() + " ")
	require.NoError(t, err)
	require.Equal(t, oid, got)
}

func TestNewsFilterDoc(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	f := newsFilterDoc(models.NewsFilter{
		Search:        "a.b",
		Theme:         models.ThemeNetworking,
		From:          &from,
		PublishedOnly: true,
	})

	m := f.Map()
	require.Equal(t, true, m["is_published"])
	require.Equal(t, "Networking", m["theme"])
	require.Equal(t, bson.D{{Key: "$gte", Value: from}}, m["publication_date"])

	or, ok := m["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)
	rx := or[0].(bson.D)[0].Value.(primitive.Regex)
	require.Equal(t, `a\.b`, rx.Pattern, "пользовательский ввод экранируется")
	require.Equal(t, "i", rx.Options)

	require.Empty(t, newsFilterDoc(models.NewsFilter{Search: "   "}))
}

func TestNewsPatchSet(t *testing.T) {
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	sd := at.Add(time.Hour)

	set := newsPatchSet(models.NewsPatch{
		Title:         ptr("t"),
		ScheduledDate: &sd,
		UpdatedAt:     at,
	}).Map()

	require.Equal(t, at, set["updated_at"])
	require.Equal(t, "t", set["title"])
	require.Equal(t, sd, set["scheduled_date"])
	require.NotContains(t, set, "content")

	cleared := newsPatchSet(models.NewsPatch{ScheduledDate: &sd, ClearSchedule: true, UpdatedAt: at}).Map()
	v, ok := cleared["scheduled_date"]
	require.True(t, ok)
	require.Nil(t, v, "ClearSchedule важнее ScheduledDate")
}

// ---- integration ----

func TestNews_CreateGetUpdateDelete(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	created, err := m.CreateNews(ctx, draft("alpha", nil))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := m.NewsByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "alpha", got.Title)
	require.Nil(t, got.ScheduledDate)
	require.Equal(t, time.UTC, got.CreatedAt.Location())

	sd := time.Now().Add(time.Hour).UTC()
	upd, err := m.UpdateNews(ctx, created.ID, models.NewsPatch{
		Title:         ptr("beta"),
		ScheduledDate: &sd,
		UpdatedAt:     time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, "beta", upd.Title)
	require.NotNil(t, upd.ScheduledDate)
	require.WithinDuration(t, sd, *upd.ScheduledDate, time.Millisecond)

	upd, err = m.UpdateNews(ctx, created.ID, models.NewsPatch{ClearSchedule: true, UpdatedAt: time.Now()})
	require.NoError(t, err)
	require.Nil(t, upd.ScheduledDate)

	require.NoError(t, m.DeleteNews(ctx, created.ID))
	require.ErrorIs(t, m.DeleteNews(ctx, created.ID), storage.ErrNotFound)

	_, err = m.NewsByID(ctx, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = m.UpdateNews(ctx, created.ID, models.NewsPatch{UpdatedAt: time.Now()})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNews_ScheduledDrafts_OrderAndFilter(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	now := time.Now().UTC()
	late := now.Add(2 * time.Hour)
	early := now.Add(time.Hour)

	_, err := m.CreateNews(ctx, draft("late", &late))
	require.NoError(t, err)
	_, err = m.CreateNews(ctx, draft("no-schedule", nil))
	require.NoError(t, err)
	_, err = m.CreateNews(ctx, draft("early", &early))
	require.NoError(t, err)

	published := draft("published", &early)
	published.IsPublished = true
	_, err = m.CreateNews(ctx, published)
	require.NoError(t, err)

	items, err := m.ScheduledDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "early", items[0].Title)
	require.Equal(t, "late", items[1].Title)
}

func TestNews_PublishNews_Idempotent(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	sd := time.Now().Add(-time.Minute).UTC()
	n, err := m.CreateNews(ctx, draft("due", &sd))
	require.NoError(t, err)

	at := time.Now().UTC()
	changed, err := m.PublishNews(ctx, n.ID, at)
	require.NoError(t, err)
	require.True(t, changed)

	got, err := m.NewsByID(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, got.IsPublished)
	require.WithinDuration(t, at, got.PublicationDate, time.Millisecond)
	require.Nil(t, got.ScheduledDate, "публикация снимает расписание")

	// Повторная публикация не меняет publication_date.
	changed, err = m.PublishNews(ctx, n.ID, at.Add(time.Hour))
	require.NoError(t, err)
	require.False(t, changed)

	again, err := m.NewsByID(ctx, n.ID)
	require.NoError(t, err)
	require.Equal(t, got.PublicationDate, again.PublicationDate)

	// Снятая с расписания новость не публикуется.
	plain, err := m.CreateNews(ctx, draft("plain", nil))
	require.NoError(t, err)
	changed, err = m.PublishNews(ctx, plain.ID, at)
	require.NoError(t, err)
	require.False(t, changed)
}

// TestNews_UnpublishAfterPromotion_NotRequeued — снятая с публикации новость
// не возвращается в выборку планировщика.
func TestNews_UnpublishAfterPromotion_NotRequeued(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	sd := time.Now().Add(-time.Minute).UTC()
	n, err := m.CreateNews(ctx, draft("promoted", &sd))
	require.NoError(t, err)

	changed, err := m.PublishNews(ctx, n.ID, time.Now())
	require.NoError(t, err)
	require.True(t, changed)

	upd, err := m.UpdateNews(ctx, n.ID, models.NewsPatch{IsPublished: ptr(false), UpdatedAt: time.Now()})
	require.NoError(t, err)
	require.False(t, upd.IsPublished)
	require.Nil(t, upd.ScheduledDate)
	require.False(t, upd.Draft())

	items, err := m.ScheduledDrafts(ctx)
	require.NoError(t, err)
	for _, it := range items {
		require.NotEqual(t, n.ID, it.ID)
	}

	changed, err = m.PublishNews(ctx, n.ID, time.Now())
	require.NoError(t, err)
	require.False(t, changed)
}

func TestNews_ListAndLatest(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	base := time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"Workshop mobile", "Parceria UnB", "Startup day"} {
		n := draft(title, nil)
		n.IsPublished = true
		n.PublicationDate = base.Add(time.Duration(i) * 24 * time.Hour)
		n.BriefDescription = "desc " + title
		if i == 1 {
			n.Theme = models.ThemePartnerships
			n.Authors = []string{"Maria Silva"}
		}
		_, err := m.CreateNews(ctx, n)
		require.NoError(t, err)
	}
	_, err := m.CreateNews(ctx, draft("hidden draft", nil))
	require.NoError(t, err)

	all, err := m.ListNews(ctx, models.NewsFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Startup day", all[0].Title)

	byAuthor, err := m.ListNews(ctx, models.NewsFilter{Search: "silva"})
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	require.Equal(t, "Parceria UnB", byAuthor[0].Title)

	byTheme, err := m.ListNews(ctx, models.NewsFilter{Theme: models.ThemePartnerships})
	require.NoError(t, err)
	require.Len(t, byTheme, 1)

	from := base.Add(24 * time.Hour)
	ranged, err := m.ListNews(ctx, models.NewsFilter{From: &from, PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, ranged, 2)

	latest, err := m.LatestNews(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	require.Equal(t, "Startup day", latest[0].Title)
	require.Equal(t, "Parceria UnB", latest[1].Title)
}

func TestPartners_OrderTiesAndMax(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	maxOrder, err := m.MaxPartnerOrder(ctx)
	require.NoError(t, err)
	require.Zero(t, maxOrder)

	now := time.Now()
	var ids []string
	for i, o := range []int{2, 1, 1, 4} {
		p, err := m.CreatePartner(ctx, models.Partner{
			Name: fmt.Sprintf("p%d", i), LogoURL: "https://logo", Order: o, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	list, err := m.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	require.Equal(t, []string{ids[1], ids[2], ids[0], ids[3]}, []string{list[0].ID, list[1].ID, list[2].ID, list[3].ID})

	maxOrder, err = m.MaxPartnerOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, maxOrder)

	require.NoError(t, m.SetPartnerOrder(ctx, ids[3], 9, now))
	maxOrder, err = m.MaxPartnerOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, 9, maxOrder)

	require.ErrorIs(t, m.SetPartnerOrder(ctx, primitive.NewObjectID().Hex(), 1, now), storage.ErrNotFound)

	upd, err := m.UpdatePartner(ctx, ids[0], models.PartnerPatch{IsActive: ptr(false), UpdatedAt: now})
	require.NoError(t, err)
	require.False(t, upd.IsActive)

	require.NoError(t, m.DeletePartner(ctx, ids[0]))
	_, err = m.PartnerByID(ctx, ids[0])
	require.ErrorIs(t, err, storage.ErrNotFound)
}
