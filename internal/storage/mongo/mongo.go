package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/go-site-content/internal/config"
	"github.com/pribylovaa/go-site-content/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	newsCollection     = "news"
	partnersCollection = "partners"
	defaultDBName      = "content"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
// Реализует storage.Storage.
type Mongo struct {
	client   *mongodriver.Client
	db       *mongodriver.Database
	news     *mongodriver.Collection
	partners *mongodriver.Collection
}

var _ storage.Storage = (*Mongo)(nil)

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции и индексы.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DB.URL))

	m := &Mongo{
		client:   cli,
		db:       db,
		news:     db.Collection(newsCollection),
		partners: db.Collection(partnersCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

// Close закрывает соединение с MongoDB.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping проверяет доступность primary (для /healthz).
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ensureIndexes создаёт индексы под выборки сервиса:
//   - сверка планировщика: is_published + scheduled_date + _id;
//   - публичные ленты: is_published + publication_date(desc);
//   - фильтр по теме;
//   - партнёры: order + _id (стабильный порядок при дублях ранга).
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	newsIdx := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "is_published", Value: 1}, {Key: "scheduled_date", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("drafts_scheduled_asc"),
		},
		{
			Keys:    bson.D{{Key: "is_published", Value: 1}, {Key: "publication_date", Value: -1}},
			Options: options.Index().SetName("published_date_desc"),
		},
		{
			Keys:    bson.D{{Key: "theme", Value: 1}},
			Options: options.Index().SetName("theme"),
		},
	}

	if _, err := m.news.Indexes().CreateMany(ctx, newsIdx); err != nil {
		return fmt.Errorf("mongo ensure news indexes: %w", err)
	}

	partnersIdx := mongodriver.IndexModel{
		Keys:    bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("order_asc"),
	}

	if _, err := m.partners.Indexes().CreateOne(ctx, partnersIdx); err != nil {
		return fmt.Errorf("mongo ensure partners indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся разбору, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}

// objectID разбирает строковый идентификатор.
// Битый формат трактуется как «нет такой записи».
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, storage.ErrNotFound
	}

	return oid, nil
}

// toMS нормализует время под точность Mongo DateTime (миллисекунды, UTC).
func toMS(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
