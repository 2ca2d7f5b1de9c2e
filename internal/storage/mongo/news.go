package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newsDoc — документ коллекции news.
// scheduled_date хранится как null, если публикация не запланирована.
type newsDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	CoverImage       string             `bson:"cover_image"`
	BriefDescription string             `bson:"brief_description"`
	Content          string             `bson:"content"`
	Authors          []string           `bson:"authors"`
	Theme            string             `bson:"theme"`
	PublicationDate  time.Time          `bson:"publication_date"`
	ScheduledDate    *time.Time         `bson:"scheduled_date"`
	IsPublished      bool               `bson:"is_published"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func newsToDoc(n models.News) newsDoc {
	doc := newsDoc{
		Title:            n.Title,
		CoverImage:       n.CoverImage,
		BriefDescription: n.BriefDescription,
		Content:          n.Content,
		Authors:          n.Authors,
		Theme:            string(n.Theme),
		PublicationDate:  toMS(n.PublicationDate),
		IsPublished:      n.IsPublished,
		CreatedAt:        toMS(n.CreatedAt),
		UpdatedAt:        toMS(n.UpdatedAt),
	}

	if n.ScheduledDate != nil {
		sd := toMS(*n.ScheduledDate)
		doc.ScheduledDate = &sd
	}

	return doc
}

func (d newsDoc) model() models.News {
	n := models.News{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		CoverImage:       d.CoverImage,
		BriefDescription: d.BriefDescription,
		Content:          d.Content,
		Authors:          d.Authors,
		Theme:            models.Theme(d.Theme),
		PublicationDate:  d.PublicationDate.UTC(),
		IsPublished:      d.IsPublished,
		CreatedAt:        d.CreatedAt.UTC(),
		UpdatedAt:        d.UpdatedAt.UTC(),
	}

	if d.ScheduledDate != nil {
		sd := d.ScheduledDate.UTC()
		n.ScheduledDate = &sd
	}

	if n.Authors == nil {
		n.Authors = []string{}
	}

	return n
}

// CreateNews вставляет документ; ID выдаёт драйвер.
func (m *Mongo) CreateNews(ctx context.Context, news models.News) (*models.News, error) {
	const op = "storage/mongo/CreateNews"

	doc := newsToDoc(news)

	res, err := m.news.InsertOne(ctx, doc)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := doc.model()

	return &out, nil
}

// UpdateNews применяет патч через $set и возвращает документ после изменения.
func (m *Mongo) UpdateNews(ctx context.Context, id string, patch models.NewsPatch) (*models.News, error) {
	const op = "storage/mongo/UpdateNews"

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	set := newsPatchSet(patch)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc newsDoc
	err = m.news.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.model()
	return &out, nil
}

// newsPatchSet собирает содержимое $set из непустых полей патча.
// updated_at выставляется всегда.
func newsPatchSet(p models.NewsPatch) bson.D {
	set := bson.D{{Key: "updated_at", Value: toMS(p.UpdatedAt)}}

	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.CoverImage != nil {
		set = append(set, bson.E{Key: "cover_image", Value: *p.CoverImage})
	}
	if p.BriefDescription != nil {
		set = append(set, bson.E{Key: "brief_description", Value: *p.BriefDescription})
	}
	if p.Content != nil {
		set = append(set, bson.E{Key: "content", Value: *p.Content})
	}
	if p.Authors != nil {
		set = append(set, bson.E{Key: "authors", Value: *p.Authors})
	}
	if p.Theme != nil {
		set = append(set, bson.E{Key: "theme", Value: string(*p.Theme)})
	}

	switch {
	case p.ClearSchedule:
		set = append(set, bson.E{Key: "scheduled_date", Value: nil})
	case p.ScheduledDate != nil:
		set = append(set, bson.E{Key: "scheduled_date", Value: toMS(*p.ScheduledDate)})
	}

	if p.IsPublished != nil {
		set = append(set, bson.E{Key: "is_published", Value: *p.IsPublished})
	}
	if p.PublicationDate != nil {
		set = append(set, bson.E{Key: "publication_date", Value: toMS(*p.PublicationDate)})
	}

	return set
}

// DeleteNews удаляет документ. При отсутствии записи — storage.ErrNotFound.
func (m *Mongo) DeleteNews(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteNews"

	oid, err := objectID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.news.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// NewsByID возвращает новость по идентификатору.
func (m *Mongo) NewsByID(ctx context.Context, id string) (*models.News, error) {
	const op = "storage/mongo/NewsByID"

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc newsDoc
	if err := m.news.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.model()
	return &out, nil
}

// ListNews возвращает новости по фильтру, сначала свежие.
func (m *Mongo) ListNews(ctx context.Context, filter models.NewsFilter) ([]models.News, error) {
	const op = "storage/mongo/ListNews"

	findOpts := options.Find().
		SetSort(bson.D{{Key: "publication_date", Value: -1}, {Key: "_id", Value: -1}})

	items, err := m.findNews(ctx, newsFilterDoc(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// newsFilterDoc переводит доменный фильтр в bson-фильтр.
// Поиск — регистронезависимый regex по title, authors (любой элемент) и brief_description;
// пользовательский ввод экранируется.
func newsFilterDoc(f models.NewsFilter) bson.D {
	filter := bson.D{}

	if f.PublishedOnly {
		filter = append(filter, bson.E{Key: "is_published", Value: true})
	}

	if f.Theme != "" {
		filter = append(filter, bson.E{Key: "theme", Value: string(f.Theme)})
	}

	if f.From != nil || f.To != nil {
		rng := bson.D{}
		if f.From != nil {
			rng = append(rng, bson.E{Key: "$gte", Value: toMS(*f.From)})
		}
		if f.To != nil {
			rng = append(rng, bson.E{Key: "$lte", Value: toMS(*f.To)})
		}
		filter = append(filter, bson.E{Key: "publication_date", Value: rng})
	}

	if q := strings.TrimSpace(f.Search); q != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: rx}},
			bson.D{{Key: "authors", Value: rx}},
			bson.D{{Key: "brief_description", Value: rx}},
		}})
	}

	return filter
}

// LatestNews возвращает до limit опубликованных новостей.
func (m *Mongo) LatestNews(ctx context.Context, limit int) ([]models.News, error) {
	const op = "storage/mongo/LatestNews"

	findOpts := options.Find().
		SetSort(bson.D{{Key: "publication_date", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	items, err := m.findNews(ctx, bson.D{{Key: "is_published", Value: true}}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// ScheduledDrafts возвращает черновики с назначенной датой, сначала ранние.
func (m *Mongo) ScheduledDrafts(ctx context.Context) ([]models.News, error) {
	const op = "storage/mongo/ScheduledDrafts"

	findOpts := options.Find().
		SetSort(bson.D{{Key: "scheduled_date", Value: 1}, {Key: "_id", Value: 1}})

	items, err := m.findNews(ctx, scheduledDraftFilter(), findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scheduledDraftFilter() bson.D {
	return bson.D{
		{Key: "is_published", Value: false},
		{Key: "scheduled_date", Value: bson.D{{Key: "$ne", Value: nil}}},
	}
}

// PublishNews — условная запись продвижения черновика.
// Матчится только черновик с непустым scheduled_date: уже опубликованная
// или снятая с расписания новость не перезаписывается (changed=false, err=nil).
// scheduled_date обнуляется: у опубликованной новости расписания нет.
func (m *Mongo) PublishNews(ctx context.Context, id string, at time.Time) (bool, error) {
	const op = "storage/mongo/PublishNews"

	oid, err := objectID(id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	filter := append(bson.D{{Key: "_id", Value: oid}}, scheduledDraftFilter()...)
	at = toMS(at)

	res, err := m.news.UpdateOne(ctx, filter, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "is_published", Value: true},
			{Key: "publication_date", Value: at},
			{Key: "updated_at", Value: at},
			{Key: "scheduled_date", Value: nil},
		}},
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return res.ModifiedCount > 0, nil
}

func (m *Mongo) findNews(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]models.News, error) {
	cur, err := m.news.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]models.News, 0)
	for cur.Next(ctx) {
		var doc newsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}

		items = append(items, doc.model())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return items, nil
}
