package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slate-seo/pkg/domain"
)

// MongoStore is a PageStore backed by a MongoDB collection.
type MongoStore struct {
	mongoClient *mongo.Client
	collection  *mongo.Collection
	now         func() time.Time
}

// mongoPage is the stored document: the page fields plus bookkeeping.
type mongoPage struct {
	ID          string `bson:"_id"`
	domain.Page `bson:",inline"`
	Published   bool      `bson:"published"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

// NewMongoStore creates a store for the given database. The collection is TableName.
func NewMongoStore(connectionString, databaseName string) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(connectionString)
	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	return &MongoStore{
		mongoClient: mongoClient,
		collection:  mongoClient.Database(databaseName).Collection(TableName),
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

// Connect pings the server and makes sure the unique slug index exists.
func (s *MongoStore) Connect(ctx context.Context) error {
	if err := s.mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "updated_at", Value: -1}}},
	}
	if _, err := s.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ExistingSlugs implements PageStore.
func (s *MongoStore) ExistingSlugs(ctx context.Context) (map[string]time.Time, error) {
	projection := bson.M{"slug": 1, "updated_at": 1, "_id": 0}
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("failed to query slugs: %w", err)
	}
	defer cursor.Close(ctx)

	out := make(map[string]time.Time)
	for cursor.Next(ctx) {
		var result struct {
			Slug      string    `bson:"slug"`
			UpdatedAt time.Time `bson:"updated_at"`
		}
		if err := cursor.Decode(&result); err != nil {
			return nil, fmt.Errorf("decode slug: %w", err)
		}
		if result.Slug != "" {
			out[result.Slug] = result.UpdatedAt
		}
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}

// InsertPage implements PageStore.
func (s *MongoStore) InsertPage(ctx context.Context, page domain.Page) error {
	now := s.now()
	doc := mongoPage{
		ID:        uuid.NewString(),
		Page:      page,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert page slug=%q: %w", page.Slug, ErrSlugExists)
		}
		return fmt.Errorf("insert page slug=%q: %w", page.Slug, err)
	}
	return nil
}

// PublishedPages implements PageStore.
func (s *MongoStore) PublishedPages(ctx context.Context) ([]domain.StoredPage, error) {
	opts := options.Find().
		SetProjection(bson.M{"slug": 1, "type": 1, "published": 1, "updated_at": 1, "_id": 0}).
		SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{"published": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query published pages: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.StoredPage
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode published pages: %w", err)
	}
	return out, nil
}

// SetPublished flips the published flag of a stored page.
func (s *MongoStore) SetPublished(ctx context.Context, slug string, published bool) error {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"slug": slug},
		bson.M{"$set": bson.M{"published": published}},
	)
	if err != nil {
		return fmt.Errorf("update published slug=%q: %w", slug, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("slug %q: %w", slug, ErrNotFound)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.mongoClient.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return err
	}
	return nil
}
