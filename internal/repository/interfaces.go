package repository

import (
	"context"

	"github.com/indrishabhtech/ap/internal/domain/billboard"
	"github.com/indrishabhtech/ap/internal/domain/devicelog"
	"github.com/indrishabhtech/ap/internal/domain/file"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type FileRepository interface {
	Create(ctx context.Context, f *file.File) error
	GetByID(ctx context.Context, id bson.ObjectID) (file.File, error)
	List(ctx context.Context, category file.Category, limit int64) ([]file.File, error)
	ListAll(ctx context.Context) ([]file.File, error)
	UpdateMeta(ctx context.Context, id bson.ObjectID, patch file.MetaPatch) (file.File, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteAll(ctx context.Context) (int64, error)
}

type BillboardRepository interface {
	Get(ctx context.Context) (billboard.Billboard, error)
	Upsert(ctx context.Context, message string) (billboard.Billboard, error)
	Clear(ctx context.Context) error
}

type DeviceLogRepository interface {
	Create(ctx context.Context, e *devicelog.Entry) error
	List(ctx context.Context, limit int64) ([]devicelog.Entry, error)
	Clear(ctx context.Context) (int64, error)
}
