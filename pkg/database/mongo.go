package database

import (
	"context"
	"errors"
	"time"

	"github.com/indrishabhtech/ap/config"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect establishes the Mongo connection and verifies it with a ping.
func Connect(cfg *config.Config) error {
	c, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx, nil); err != nil {
		return err
	}

	client = c
	db = c.Database(cfg.MongoDB)
	return nil
}

// DB returns the connected database handle. Connect must be called first.
func DB() *mongo.Database {
	if db == nil {
		panic("database not connected. Call Connect() first")
	}
	return db
}

func HealthCheck() error {
	if client == nil {
		return errors.New("database not connected")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx, nil)
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the list endpoints sort on.
func EnsureIndexes(ctx context.Context) error {
	if db == nil {
		return errors.New("database not connected")
	}

	_, err := db.Collection("files").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "uploaded_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("device_logs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}
