package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection          = "users"
	deletedUsersCollection   = "deleted_users"
	messagesCollection       = "messages"
	groupMessagesCollection  = "group_messages"
	friendRequestsCollection = "friend_requests"
	reportsCollection        = "reports"
)

type MongoCampusChatRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoCampusChatRepository(ctx context.Context, uri, dbName string) (*MongoCampusChatRepository, error) {
	opts := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	repo := &MongoCampusChatRepository{
		client: client,
		db:     client.Database(dbName),
	}

	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return repo, nil
}

func (r *MongoCampusChatRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoCampusChatRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *MongoCampusChatRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// objectId parses a client-supplied hex id. Malformed ids map to
// ErrNoDocuments so callers treat them the same as a missing record.
func objectId(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, mongo.ErrNoDocuments
	}
	return oid, nil
}
