package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-site-content/internal/models"
	"github.com/pribylovaa/go-site-content/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type partnerDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	LogoURL    string             `bson:"logo_url"`
	WebsiteURL string             `bson:"website_url"`
	Order      int                `bson:"order"`
	IsActive   bool               `bson:"is_active"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d partnerDoc) model() models.Partner {
	return models.Partner{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		LogoURL:    d.LogoURL,
		WebsiteURL: d.WebsiteURL,
		Order:      d.Order,
		IsActive:   d.IsActive,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

// CreatePartner вставляет документ; ID выдаёт драйвер.
func (m *Mongo) CreatePartner(ctx context.Context, p models.Partner) (*models.Partner, error) {
	const op = "storage/mongo/CreatePartner"

	doc := partnerDoc{
		Name:       p.Name,
		LogoURL:    p.LogoURL,
		WebsiteURL: p.WebsiteURL,
		Order:      p.Order,
		IsActive:   p.IsActive,
		CreatedAt:  toMS(p.CreatedAt),
		UpdatedAt:  toMS(p.UpdatedAt),
	}

	res, err := m.partners.InsertOne(ctx, doc)
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

// UpdatePartner применяет патч и возвращает документ после изменения.
func (m *Mongo) UpdatePartner(ctx context.Context, id string, patch models.PartnerPatch) (*models.Partner, error) {
	const op = "storage/mongo/UpdatePartner"

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	set := bson.D{{Key: "updated_at", Value: toMS(patch.UpdatedAt)}}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.LogoURL != nil {
		set = append(set, bson.E{Key: "logo_url", Value: *patch.LogoURL})
	}
	if patch.WebsiteURL != nil {
		set = append(set, bson.E{Key: "website_url", Value: *patch.WebsiteURL})
	}
	if patch.Order != nil {
		set = append(set, bson.E{Key: "order", Value: *patch.Order})
	}
	if patch.IsActive != nil {
		set = append(set, bson.E{Key: "is_active", Value: *patch.IsActive})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc partnerDoc
	err = m.partners.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.model()
	return &out, nil
}

// DeletePartner удаляет документ. Ранги оставшихся не уплотняются.
func (m *Mongo) DeletePartner(ctx context.Context, id string) error {
	const op = "storage/mongo/DeletePartner"

	oid, err := objectID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.partners.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// PartnerByID возвращает партнёра по идентификатору.
func (m *Mongo) PartnerByID(ctx context.Context, id string) (*models.Partner, error) {
	const op = "storage/mongo/PartnerByID"

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc partnerDoc
	if err := m.partners.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.model()
	return &out, nil
}

// ListPartners возвращает всех партнёров: order ASC, _id ASC.
// ObjectID монотонно растёт при вставке, поэтому _id задаёт порядок поступления.
func (m *Mongo) ListPartners(ctx context.Context) ([]models.Partner, error) {
	const op = "storage/mongo/ListPartners"

	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := m.partners.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := make([]models.Partner, 0)
	for cur.Next(ctx) {
		var doc partnerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, doc.model())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// SetPartnerOrder записывает ранг одного партнёра.
func (m *Mongo) SetPartnerOrder(ctx context.Context, id string, order int, at time.Time) error {
	const op = "storage/mongo/SetPartnerOrder"

	oid, err := objectID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.partners.UpdateByID(ctx, oid, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "order", Value: order},
			{Key: "updated_at", Value: toMS(at)},
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// MaxPartnerOrder возвращает максимальный ранг (0 для пустой коллекции).
func (m *Mongo) MaxPartnerOrder(ctx context.Context) (int, error) {
	const op = "storage/mongo/MaxPartnerOrder"

	opts := options.FindOne().
		SetSort(bson.D{{Key: "order", Value: -1}}).
		SetProjection(bson.D{{Key: "order", Value: 1}})

	var doc partnerDoc
	if err := m.partners.FindOne(ctx, bson.D{}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return 0, nil
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return doc.Order, nil
}
