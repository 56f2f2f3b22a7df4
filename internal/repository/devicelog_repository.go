package repository

import (
	"context"

	"github.com/indrishabhtech/ap/internal/domain/devicelog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoDeviceLogRepository struct {
	coll *mongo.Collection
}

func NewDeviceLogRepository(db *mongo.Database) DeviceLogRepository {
	return &MongoDeviceLogRepository{coll: db.Collection("device_logs")}
}

func (r *MongoDeviceLogRepository) Create(ctx context.Context, e *devicelog.Entry) error {
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		e.ID = id
	}
	return nil
}

func (r *MongoDeviceLogRepository) List(ctx context.Context, limit int64) ([]devicelog.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []devicelog.Entry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoDeviceLogRepository) Clear(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
