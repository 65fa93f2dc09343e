package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const clientStateCollection = "clientState"

type stateDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore keeps client state in a mongo collection, one document per key.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDBClient initializes new mongoDB client and checks the connection.
func NewMongoDBClient(ctx context.Context, uri string) (*mongo.Client, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctxWithTimeout, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	err = client.Ping(ctxWithTimeout, readpref.Primary())
	if err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}

// NewMongo connects to mongo and returns a store on the given database.
func NewMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := NewMongoDBClient(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// NewMongoStore wraps an already connected database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		client: db.Client(),
		db:     db,
	}
}

// Get returns the value stored under key.
func (r *MongoStore) Get(ctx context.Context, key string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := new(stateDocument)
	err := r.db.Collection(clientStateCollection).FindOne(ctxWithTimeout, bson.M{"_id": key}).Decode(doc)
	if err == mongo.ErrNoDocuments {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}

	return doc.Value, nil
}

// Set stores value under key, replacing the previous one.
func (r *MongoStore) Set(ctx context.Context, key, value string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := stateDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)

	_, err := r.db.Collection(clientStateCollection).ReplaceOne(ctxWithTimeout, bson.M{"_id": key}, doc, opts)
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}

	return nil
}

// Close closes mongo db connection.
func (r *MongoStore) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}
