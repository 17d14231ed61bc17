package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bloglist/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoCollection = "blogs"

type mongoBlog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	URL       string             `bson:"url"`
	Likes     int                `bson:"likes"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d mongoBlog) toEntity() entity.Blog {
	return entity.Blog{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Author:    d.Author,
		URL:       d.URL,
		Likes:     d.Likes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// MongoRepo stores blogs as documents in a MongoDB collection.
type MongoRepo struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
}

// OpenMongo connects to uri and verifies the connection before returning.
func OpenMongo(ctx context.Context, uri, database string, timeout time.Duration) (*MongoRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	repo := NewMongoRepo(client, database, timeout)
	if err := repo.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return repo, nil
}

func NewMongoRepo(client *mongo.Client, database string, timeout time.Duration) *MongoRepo {
	return &MongoRepo{
		client:  client,
		coll:    client.Database(database).Collection(mongoCollection),
		timeout: timeout,
	}
}

func (r *MongoRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *MongoRepo) List(ctx context.Context) ([]entity.Blog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []mongoBlog
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]entity.Blog, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *MongoRepo) Create(ctx context.Context, b *entity.Blog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := mongoBlog{
		ID:        primitive.NewObjectID(),
		Title:     b.Title,
		Author:    b.Author,
		URL:       b.URL,
		Likes:     b.Likes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	*b = doc.toEntity()
	return nil
}

func (r *MongoRepo) Update(ctx context.Context, id string, b entity.Blog) (entity.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.Blog{}, ErrInvalidID
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":      b.Title,
		"author":     b.Author,
		"url":        b.URL,
		"likes":      b.Likes,
		"updated_at": time.Now().UTC().Truncate(time.Millisecond),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoBlog
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Blog{}, ErrNotFound
		}
		return entity.Blog{}, err
	}
	return doc.toEntity(), nil
}

func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteAll(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *MongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
