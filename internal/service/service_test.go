package service

// Тесты сервисного слоя content-service.
//
//  Проверяем:
//  - авторизацию мутаций и скрытие черновиков от анонимных читателей;
//  - валидацию и нормализацию входов;
//  - маппинг ошибок storage -> service;
//  - синхронизацию с планировщиком и сброс кэша.
//
// Моки (mocks/) сгенерированы mockgen:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -source=./internal/service/service.go -destination=./mocks/service.go -package=mocks

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-site-content/internal/config"
	"github.com/pribylovaa/go-site-content/mocks"
)

var fixedNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	st    *mocks.MockStorage
	sched *mocks.MockScheduler
	cache *mocks.MockCache
	rec   *mocks.MockRecorder
}

// newFixture поднимает сервис с моками; authorized задаёт ответ Authorizer.
func newFixture(t *testing.T, authorized bool) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		st:    mocks.NewMockStorage(ctrl),
		sched: mocks.NewMockScheduler(ctrl),
		cache: mocks.NewMockCache(ctrl),
		rec:   mocks.NewMockRecorder(ctrl),
	}

	authz := mocks.NewMockAuthorizer(ctrl)
	authz.EXPECT().Authorized(gomock.Any()).Return(authorized).AnyTimes()

	cfg := config.Config{Limits: config.LimitsConfig{Latest: 3, Max: 50}}

	f.svc = New(f.st, f.sched, f.cache, authz, f.rec, cfg)
	f.svc.now = func() time.Time { return fixedNow }

	return f
}

func (f *fixture) allowNewsInvalidation() {
	f.cache.EXPECT().InvalidateNews(gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) allowPartnersInvalidation() {
	f.cache.EXPECT().InvalidatePartners(gomock.Any()).Return(nil).AnyTimes()
}

func ptr[T any](v T) *T { return &v }
