package repository

import (
	"context"
	"errors"

	"github.com/indrishabhtech/ap/internal/domain/file"
	aperrors "github.com/indrishabhtech/ap/pkg/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoFileRepository struct {
	coll *mongo.Collection
}

func NewFileRepository(db *mongo.Database) FileRepository {
	return &MongoFileRepository{coll: db.Collection("files")}
}

func (r *MongoFileRepository) Create(ctx context.Context, f *file.File) error {
	res, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		f.ID = id
	}
	return nil
}

func (r *MongoFileRepository) GetByID(ctx context.Context, id bson.ObjectID) (file.File, error) {
	var f file.File
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return file.File{}, aperrors.ErrNotFound
		}
		return file.File{}, err
	}
	return f, nil
}

func (r *MongoFileRepository) List(ctx context.Context, category file.Category, limit int64) ([]file.File, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	files := []file.File{}
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *MongoFileRepository) ListAll(ctx context.Context) ([]file.File, error) {
	return r.List(ctx, "", 0)
}

func (r *MongoFileRepository) UpdateMeta(ctx context.Context, id bson.ObjectID, patch file.MetaPatch) (file.File, error) {
	set := bson.M{}
	if patch.OriginalName != nil {
		set["original_name"] = *patch.OriginalName
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		return file.File{}, aperrors.ErrInvalidInput
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated file.File
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return file.File{}, aperrors.ErrNotFound
		}
		return file.File{}, err
	}
	return updated, nil
}

func (r *MongoFileRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return aperrors.ErrNotFound
	}
	return nil
}

func (r *MongoFileRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
