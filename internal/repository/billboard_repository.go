package repository

import (
	"context"
	"errors"
	"time"

	"github.com/indrishabhtech/ap/internal/domain/billboard"
	aperrors "github.com/indrishabhtech/ap/pkg/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoBillboardRepository struct {
	coll *mongo.Collection
}

func NewBillboardRepository(db *mongo.Database) BillboardRepository {
	return &MongoBillboardRepository{coll: db.Collection("billboard")}
}

func (r *MongoBillboardRepository) Get(ctx context.Context) (billboard.Billboard, error) {
	var b billboard.Billboard
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return billboard.Billboard{}, aperrors.ErrNotFound
		}
		return billboard.Billboard{}, err
	}
	return b, nil
}

// Upsert merges create and update: the collection is meant to hold at most
// one document, so an empty filter targets it.
func (r *MongoBillboardRepository) Upsert(ctx context.Context, message string) (billboard.Billboard, error) {
	update := bson.M{"$set": bson.M{
		"message":    message,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var b billboard.Billboard
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&b); err != nil {
		return billboard.Billboard{}, err
	}
	return b, nil
}

func (r *MongoBillboardRepository) Clear(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
