package http

// Сквозные тесты REST-слоя: настоящий роутер, мидлвары, сервис и планировщик;
// хранилище — gomock (mocks.MockStorage).

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-site-content/internal/auth"
	"github.com/pribylovaa/go-site-content/internal/config"
	apierrors "github.com/pribylovaa/go-site-content/internal/errors"
	"github.com/pribylovaa/go-site-content/internal/http/handlers"
	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/scheduler"
	"github.com/pribylovaa/go-site-content/internal/service"
	"github.com/pribylovaa/go-site-content/internal/storage"
	"github.com/pribylovaa/go-site-content/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail = "admin@example.org"
	adminPass  = "s3cret-pass"
)

type env struct {
	router http.Handler
	st     *mocks.MockStorage
	sched  *scheduler.Scheduler
	token  string
}

func newEnv(t *testing.T, opts Options) *env {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Config{
		Limits: config.LimitsConfig{Latest: 3, Max: 50},
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret",
			Issuer:            "content-service",
			Audience:          []string{"admin-dashboard"},
			AccessTokenTTL:    time.Hour,
			AdminEmail:        adminEmail,
			AdminPasswordHash: string(hash),
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)

	sched := scheduler.New(st, scheduler.Options{Interval: time.Hour, Logger: logger})
	t.Cleanup(sched.Stop)

	svc := service.New(st, sched, nil, auth.ContextAuthorizer{}, nil, cfg)
	a := auth.New(cfg.Auth)

	tok, err := a.Login(context.Background(), adminEmail, adminPass)
	require.NoError(t, err)

	h := handlers.New(handlers.Deps{Service: svc, Auth: a, Scheduler: sched})

	opts.Logger = logger
	opts.Validator = a
	if opts.BasePath == "" {
		opts.BasePath = "/api/v1"
	}

	return &env{router: NewRouter(h, opts), st: st, sched: sched, token: tok.AccessToken}
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestProbes(t *testing.T) {
	ready := false
	e := newEnv(t, Options{Ready: func() bool { return ready }})

	rr := e.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = e.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	ready = true
	rr = e.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestThemes(t *testing.T) {
	e := newEnv(t, Options{})

	rr := e.do(t, http.MethodGet, "/api/v1/themes", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	out := decode[struct {
		Items   []string `json:"items"`
		Default string   `json:"default"`
	}](t, rr)
	require.Len(t, out.Items, 10)
	require.Equal(t, "Inovação", out.Items[0])
	require.Equal(t, "Tecnologia", out.Default)
}

func TestUnknownRoute_JSON404(t *testing.T) {
	e := newEnv(t, Options{})

	rr := e.do(t, http.MethodGet, "/api/v1/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	env := decode[apierrors.ErrorResponse](t, rr)
	require.Equal(t, "not_found", env.Error.Code)
	require.NotEmpty(t, env.Error.RequestID)
}

func TestLogin(t *testing.T) {
	e := newEnv(t, Options{})

	rr := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": adminEmail, "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "unauthenticated", decode[apierrors.ErrorResponse](t, rr).Error.Code)

	rr = e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": " ADMIN@example.org ", "password": adminPass})
	require.Equal(t, http.StatusOK, rr.Code)

	tok := decode[struct {
		AccessToken string    `json:"access_token"`
		TokenType   string    `json:"token_type"`
		ExpiresAt   time.Time `json:"expires_at"`
	}](t, rr)
	require.NotEmpty(t, tok.AccessToken)
	require.Equal(t, "Bearer", tok.TokenType)
	require.True(t, tok.ExpiresAt.After(time.Now()))
}

func TestCreateNews_RequiresToken(t *testing.T) {
	e := newEnv(t, Options{})

	body := map[string]any{
		"title":       "Hackathon",
		"cover_image": "https://cdn.example.org/h.png",
		"authors":     []string{"Ana"},
	}

	rr := e.do(t, http.MethodPost, "/api/v1/news", "", body)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = e.do(t, http.MethodPost, "/api/v1/news", "forged.token.value", body)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateNews_Published(t *testing.T) {
	e := newEnv(t, Options{})

	e.st.EXPECT().
		CreateNews(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.News) (*models.News, error) {
			require.Equal(t, "Hackathon", n.Title)
			require.Equal(t, models.DefaultTheme, n.Theme)
			require.True(t, n.IsPublished)
			require.Nil(t, n.ScheduledDate)
			n.ID = "65f000000000000000000001"
			return &n, nil
		})

	rr := e.do(t, http.MethodPost, "/api/v1/news", e.token, map[string]any{
		"title":        "Hackathon",
		"cover_image":  "https://cdn.example.org/h.png",
		"authors":      []string{"Ana"},
		"is_published": true,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	out := decode[map[string]any](t, rr)
	require.Equal(t, "65f000000000000000000001", out["id"])
	require.Equal(t, "Tecnologia", out["theme"])
	require.Nil(t, out["scheduled_date"])
}

func TestCreateNews_BadBody(t *testing.T) {
	e := newEnv(t, Options{})

	rr := e.do(t, http.MethodPost, "/api/v1/news", e.token, `{"title":"x","unknown":1}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decode[apierrors.ErrorResponse](t, rr).Error.Code)

	rr = e.do(t, http.MethodPost, "/api/v1/news", e.token, `{"title":"x"} {"title":"y"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestCreateNews_FutureScheduleRegistersTimer — черновик попадает в панель планировщика.
func TestCreateNews_FutureScheduleRegistersTimer(t *testing.T) {
	e := newEnv(t, Options{})
	target := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	e.st.EXPECT().
		CreateNews(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.News) (*models.News, error) {
			n.ID = "65f000000000000000000002"
			return &n, nil
		})

	rr := e.do(t, http.MethodPost, "/api/v1/news", e.token, map[string]any{
		"title":          "Demo day",
		"cover_image":    "https://cdn.example.org/d.png",
		"authors":        []string{"Bruno"},
		"theme":          "Eventos",
		"scheduled_date": target.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = e.do(t, http.MethodGet, "/api/v1/admin/scheduler", e.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	st := decode[struct {
		Running      bool `json:"running"`
		PendingCount int  `json:"pending_count"`
		Pending      []struct {
			ID      string    `json:"id"`
			Title   string    `json:"title"`
			Target  time.Time `json:"target"`
			DueInMS int64     `json:"due_in_ms"`
		} `json:"pending"`
	}](t, rr)
	require.False(t, st.Running)
	require.Equal(t, 1, st.PendingCount)
	require.Equal(t, "Demo day", st.Pending[0].Title)
	require.True(t, target.Equal(st.Pending[0].Target))
	require.Greater(t, st.Pending[0].DueInMS, int64(0))
}

func TestGetNews_DraftHiddenFromAnonymous(t *testing.T) {
	e := newEnv(t, Options{})
	draft := &models.News{ID: "65f000000000000000000003", Title: "Draft", IsPublished: false}

	e.st.EXPECT().NewsByID(gomock.Any(), draft.ID).Return(draft, nil).Times(2)

	rr := e.do(t, http.MethodGet, "/api/v1/news/"+draft.ID, "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = e.do(t, http.MethodGet, "/api/v1/news/"+draft.ID, e.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Draft", decode[map[string]any](t, rr)["title"])
}

func TestGetNews_StorageNotFound(t *testing.T) {
	e := newEnv(t, Options{})
	e.st.EXPECT().NewsByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	rr := e.do(t, http.MethodGet, "/api/v1/news/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListNews_QueryParams(t *testing.T) {
	e := newEnv(t, Options{})

	e.st.EXPECT().
		ListNews(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.NewsFilter) ([]models.News, error) {
			require.True(t, f.PublishedOnly)
			require.Equal(t, models.ThemeEvents, f.Theme)
			require.Equal(t, "demo", f.Search)
			require.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *f.From)
			require.Equal(t, time.Date(2025, 6, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC), *f.To)
			return []models.News{{ID: "a", Title: "A", IsPublished: true}}, nil
		})

	rr := e.do(t, http.MethodGet, "/api/v1/news?theme=Eventos&search=%20demo%20&from=2025-06-01&to=2025-06-30", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	out := decode[struct {
		Items []map[string]any `json:"items"`
	}](t, rr)
	require.Len(t, out.Items, 1)
	require.Equal(t, []any{}, out.Items[0]["authors"])

	rr = e.do(t, http.MethodGet, "/api/v1/news?from=yesterday", "", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = e.do(t, http.MethodGet, "/api/v1/news?theme=Sports", "", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLatestNews_LimitParam(t *testing.T) {
	e := newEnv(t, Options{})

	e.st.EXPECT().LatestNews(gomock.Any(), 3).Return([]models.News{}, nil)
	rr := e.do(t, http.MethodGet, "/api/v1/news/latest", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	e.st.EXPECT().LatestNews(gomock.Any(), 50).Return([]models.News{}, nil)
	rr = e.do(t, http.MethodGet, "/api/v1/news/latest?limit=1000", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = e.do(t, http.MethodGet, "/api/v1/news/latest?limit=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteNews(t *testing.T) {
	e := newEnv(t, Options{})

	e.st.EXPECT().DeleteNews(gomock.Any(), "n1").Return(nil)
	rr := e.do(t, http.MethodDelete, "/api/v1/news/n1", e.token, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = e.do(t, http.MethodDelete, "/api/v1/news/n1", "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPartners_Routes(t *testing.T) {
	e := newEnv(t, Options{})

	list := []models.Partner{
		{ID: "a", Name: "Acme", Order: 1, IsActive: true},
		{ID: "b", Name: "Beta", Order: 2, IsActive: false},
	}

	e.st.EXPECT().ListPartners(gomock.Any()).Return(list, nil)
	rr := e.do(t, http.MethodGet, "/api/v1/partners", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	out := decode[struct {
		Items []map[string]any `json:"items"`
	}](t, rr)
	require.Len(t, out.Items, 1, "анонимный видит только активных")

	rr = e.do(t, http.MethodGet, "/api/v1/partners?active=maybe", "", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	e.st.EXPECT().MaxPartnerOrder(gomock.Any()).Return(2, nil)
	rr = e.do(t, http.MethodGet, "/api/v1/partners/next-order", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 3, decode[struct {
		Order int `json:"order"`
	}](t, rr).Order)

	e.st.EXPECT().ListPartners(gomock.Any()).Return(list, nil)
	rr = e.do(t, http.MethodGet, "/api/v1/partners/active", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	gomock.InOrder(
		e.st.EXPECT().ListPartners(gomock.Any()).Return(list, nil),
		e.st.EXPECT().SetPartnerOrder(gomock.Any(), "b", 1, gomock.Any()).Return(nil),
		e.st.EXPECT().SetPartnerOrder(gomock.Any(), "a", 2, gomock.Any()).Return(nil),
		e.st.EXPECT().ListPartners(gomock.Any()).Return([]models.Partner{
			{ID: "b", Name: "Beta", Order: 1},
			{ID: "a", Name: "Acme", Order: 2, IsActive: true},
		}, nil),
	)
	rr = e.do(t, http.MethodPost, "/api/v1/partners/b/move", e.token, map[string]string{"direction": "up"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = e.do(t, http.MethodPost, "/api/v1/partners/reorder", e.token, map[string]any{"items": []any{}})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSchedulerPanel(t *testing.T) {
	e := newEnv(t, Options{})

	rr := e.do(t, http.MethodGet, "/api/v1/admin/scheduler", "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	future := time.Now().Add(time.Hour).UTC()
	e.st.EXPECT().ScheduledDrafts(gomock.Any()).Return([]models.News{
		{ID: "d1", Title: "Later", ScheduledDate: &future},
	}, nil)

	rr = e.do(t, http.MethodPost, "/api/v1/admin/scheduler/check", e.token, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.EqualValues(t, 1, decode[map[string]any](t, rr)["pending_count"])

	rr = e.do(t, http.MethodDelete, "/api/v1/admin/scheduler/pending", e.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, decode[struct {
		Cleared int `json:"cleared"`
	}](t, rr).Cleared)

	// Start: первый проход сразу; Stop дожидается завершения цикла.
	e.st.EXPECT().ScheduledDrafts(gomock.Any()).Return(nil, nil).AnyTimes()

	rr = e.do(t, http.MethodPost, "/api/v1/admin/scheduler/start", e.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, true, decode[map[string]any](t, rr)["running"])

	rr = e.do(t, http.MethodPost, "/api/v1/admin/scheduler/stop", e.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, false, decode[map[string]any](t, rr)["running"])
}
